package main

import (
	"context"
	"flag"
	"log"

	"tradejournal/config"
	"tradejournal/internal/adapters/logger"
	"tradejournal/internal/adapters/sqlite"
	"tradejournal/internal/utils"
)

func main() {
	file := flag.String("file", "", "CSV file to import (required)")
	keepIDs := flag.Bool("keep-ids", false, "preserve trade IDs from the CSV instead of minting new ones")
	flag.Parse()
	if *file == "" {
		log.Fatal("FATAL: -file is required")
	}

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Read the CSV
	trades, err := utils.ReadTradesFromCSV(*file)
	if err != nil {
		appLogger.Error(context.Background(), err, "Error reading CSV")
		log.Fatalf("Error reading CSV: %v", err)
	}
	appLogger.Info(context.Background(), "Parsed trades", map[string]interface{}{"count": len(trades), "file": *file})

	// 4. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
	}
	defer repo.Close()

	// 5. Persist
	for _, t := range trades {
		if !*keepIDs {
			t.ID = ""
		}
		if _, err := repo.CreateTrade(context.Background(), t); err != nil {
			appLogger.Error(context.Background(), err, "Error importing trade")
			log.Fatalf("Error importing trade: %v", err)
		}
	}
	appLogger.Info(context.Background(), "Import complete", map[string]interface{}{"count": len(trades), "db": cfg.DBPath})
}
