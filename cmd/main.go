// Command coinreport values a wallet's transaction history against
// historical market prices and writes a JSON summary plus a PNG chart
// of wallet value and profit over time.
//
// Usage:
//
//	coinreport --file wallet.json --currency usd
//	coinreport (prompts for missing parameters)
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/vadiminshakov/coinreport/config"
	"github.com/vadiminshakov/coinreport/internal"
	"github.com/vadiminshakov/coinreport/internal/setup"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.File == "" || cfg.Currency == "" {
		if err := setup.Run(&cfg); err != nil {
			log.Fatal(err)
		}
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	analyzer := internal.NewAnalyzer(cfg, logger)
	if err := analyzer.Run(context.Background()); err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}
}
