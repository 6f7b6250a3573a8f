package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"tradejournal/internal/domain"
)

var csvHeader = []string{"id", "timestamp", "pnl", "conforme", "setup", "session", "sentiment"}

func WriteTradesToCSV(trades []*domain.Trade, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	writer.Write(csvHeader)

	for _, t := range trades {
		writer.Write([]string{
			t.ID,
			t.Timestamp.Format(time.RFC3339),
			strconv.FormatFloat(t.PNL, 'f', -1, 64),
			strconv.FormatBool(t.Conforme),
			t.Setup,
			string(t.Session),
			string(t.Sentiment),
		})
	}
	return writer.Error()
}

// ReadTradesFromCSV parses a journal export produced by WriteTradesToCSV.
// Optional columns (setup, session, sentiment) may be empty.
func ReadTradesFromCSV(filename string) ([]*domain.Trade, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row
	var trades []*domain.Trade
	for i, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(csvHeader), len(rec))
		}
		ts, err := time.Parse(time.RFC3339, rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing timestamp: %w", i+2, err)
		}
		pnl, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing pnl: %w", i+2, err)
		}
		conforme, err := strconv.ParseBool(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing conforme: %w", i+2, err)
		}
		trades = append(trades, &domain.Trade{
			ID:        rec[0],
			Timestamp: ts,
			PNL:       pnl,
			Conforme:  conforme,
			Setup:     rec[4],
			Session:   domain.Session(rec[5]),
			Sentiment: domain.Sentiment(rec[6]),
		})
	}
	return trades, nil
}
