package main

import (
	"context"
	"flag"
	"log"
	"time"

	"tradejournal/config"
	"tradejournal/internal/adapters/logger"
	"tradejournal/internal/adapters/sqlite"
	"tradejournal/internal/demo"
)

func main() {
	count := flag.Int("count", 0, "number of trades to generate (default DEMO_TRADES)")
	seed := flag.Int64("seed", 0, "RNG seed (default DEMO_SEED)")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}
	if *count <= 0 {
		*count = cfg.DemoTrades
	}
	if *seed == 0 {
		*seed = cfg.DemoSeed
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
	}
	defer repo.Close()

	// 4. Generate and persist the dataset. IDs are cleared so the
	// repository mints real ones.
	trades := demo.GenerateTrades(*count, *seed, time.Now().In(cfg.Timezone))
	for _, t := range trades {
		t.ID = ""
		if _, err := repo.CreateTrade(context.Background(), t); err != nil {
			appLogger.Error(context.Background(), err, "Error seeding trade")
			log.Fatalf("Error seeding trade: %v", err)
		}
	}
	appLogger.Info(context.Background(), "Seeded journal", map[string]interface{}{"count": len(trades), "db": cfg.DBPath})
}
