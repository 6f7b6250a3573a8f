package main

import (
	"context"
	"fmt"
	"log" // Use standard log only for initial fatal errors before logger is set up
	"os"
	"text/tabwriter"

	"tradejournal/config"
	"tradejournal/internal/adapters/logger"
	"tradejournal/internal/adapters/sqlite"
	"tradejournal/internal/app"
	"tradejournal/internal/ports"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	var appLogger ports.Logger
	if cfg.LogJSON {
		zl, err := logger.NewZapLogger(cfg.LogLevel)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize logger: %v", err)
		}
		defer zl.Sync()
		appLogger = zl
	} else {
		appLogger = logger.NewStdLogger(cfg.LogLevel)
	}
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err) // Also log to stderr
	}
	defer func() {
		if err := repo.Close(); err != nil {
			appLogger.Error(context.Background(), err, "Error closing database repository")
		}
	}()
	appLogger.Info(context.Background(), "Database repository initialized")

	// 4. Initialize Application Service
	journal, err := app.NewJournalService(cfg, appLogger, repo)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize journal service")
		log.Fatalf("FATAL: Failed to initialize journal service: %v", err)
	}

	// 5. Compute and render the dashboard snapshot
	snap, err := journal.Dashboard(context.Background())
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to compute dashboard")
		log.Fatalf("FATAL: Failed to compute dashboard: %v", err)
	}

	renderSnapshot(snap)
}

// renderSnapshot prints a plain-text rendition of the dashboard.
func renderSnapshot(snap *app.Snapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	if snap.Demo {
		fmt.Fprintln(w, "(demo dataset: the journal could not be loaded)")
		fmt.Fprintln(w)
	}

	sum := snap.Summary
	fmt.Fprintln(w, "DISCIPLINE")
	fmt.Fprintf(w, "  Score\t%.1f%%\n", sum.DisciplineScore)
	fmt.Fprintf(w, "  Trades\t%d (%d compliant / %d non-compliant)\n",
		sum.TotalTrades, len(sum.Compliant), len(sum.NonCompliant))
	fmt.Fprintf(w, "  Win rate\t%.1f%% plan zone / %.1f%% chaos zone\n",
		sum.CompliantWinRate, sum.NonCompliantWinRate)
	fmt.Fprintf(w, "  PnL\t%+.2f plan zone / %+.2f chaos zone\n",
		sum.CompliantPnL, sum.NonCompliantPnL)
	fmt.Fprintf(w, "  Indiscipline cost\t%.2f\n", sum.IndisciplineCost)
	if sum.PriorityError != "" {
		fmt.Fprintf(w, "  Priority error\t%s (%d losing trades)\n", sum.PriorityError, sum.PriorityErrorCount)
	}
	fmt.Fprintln(w)

	st := snap.Stats
	fmt.Fprintln(w, "PERFORMANCE")
	fmt.Fprintf(w, "  Win rate\t%.1f%% (%d W / %d L)\n", st.WinRate, st.WinningTrades, st.LosingTrades)
	fmt.Fprintf(w, "  Total PnL\t%+.2f\n", st.TotalPnL)
	fmt.Fprintf(w, "  Avg win / loss\t%+.2f / %+.2f\n", st.AvgWin, st.AvgLoss)
	fmt.Fprintf(w, "  Best / worst\t%+.2f / %+.2f\n", st.BestTrade, st.WorstTrade)
	fmt.Fprintf(w, "  Profit factor\t%.2f\n", st.ProfitFactor)
	fmt.Fprintln(w)

	ins := snap.Insight
	fmt.Fprintf(w, "INSIGHT [%s]\t%s\n", ins.Severity, ins.Message)
	fmt.Fprintln(w)

	hm := snap.Heatmap
	fmt.Fprintln(w, "LAST 365 DAYS")
	fmt.Fprintf(w, "  Trading days\t%d (%d green / %d red)\n", hm.TradingDays, hm.WinningDays, hm.LosingDays)
	fmt.Fprintf(w, "  Weeks\t%d\n", len(hm.Weeks))
	fmt.Fprintf(w, "  Months\t")
	for i, ml := range hm.MonthLabels {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, ml.Month.String()[:3])
	}
	fmt.Fprintln(w)
}
