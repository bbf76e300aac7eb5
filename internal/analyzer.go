package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/coinreport/config"
	"github.com/vadiminshakov/coinreport/internal/clients"
	"github.com/vadiminshakov/coinreport/internal/domain"
	"github.com/vadiminshakov/coinreport/internal/ledger"
	"github.com/vadiminshakov/coinreport/internal/services/chart"
	"github.com/vadiminshakov/coinreport/internal/services/pricer"
	"github.com/vadiminshakov/coinreport/internal/services/replay"
	"github.com/vadiminshakov/coinreport/internal/services/report"
	"github.com/vadiminshakov/coinreport/pkg/retrier"
)

// Analyzer runs the full valuation pipeline for one wallet file: load,
// spot price, replay, summary, chart. A run either completes and writes
// both artifacts or aborts without writing anything.
type Analyzer struct {
	cfg    config.Config
	prices *pricer.Service
	logger *zap.Logger
}

// NewAnalyzer wires the price client, retry policy and cache for one run.
func NewAnalyzer(cfg config.Config, logger *zap.Logger) *Analyzer {
	client := clients.NewCoinGeckoClient(cfg.ProviderURL)

	r := retrier.New(
		retrier.WithMaxAttempts(cfg.Retries),
		retrier.WithInterval(cfg.RetryCooldown),
		retrier.WithRetryable(func(err error) bool {
			return !errors.Is(err, clients.ErrUnexpectedFormat)
		}),
	)

	return &Analyzer{
		cfg:    cfg,
		prices: pricer.New(client, r, logger),
		logger: logger,
	}
}

// Run executes the pipeline.
func (a *Analyzer) Run(ctx context.Context) error {
	wallet, err := ledger.Load(a.cfg.File)
	if err != nil {
		return err
	}
	family := domain.FamilyFor(wallet.Coin)

	spot, err := a.prices.CurrentPrice(ctx, family.ProviderID, a.cfg.Currency)
	if err != nil {
		return errors.Wrap(err, "failed to fetch current price")
	}
	a.logger.Info("fetched current price",
		zap.String("coin", family.ProviderID),
		zap.String("currency", a.cfg.Currency),
		zap.String("price", spot.String()))

	throttle := replay.Throttle{Every: a.cfg.ThrottleEvery, Cooldown: a.cfg.ThrottleCooldown}
	res, err := replay.New(a.prices, family, a.cfg.Currency, spot, throttle, a.logger).
		Run(ctx, wallet.Transactions)
	if err != nil {
		return err
	}

	summary := report.Build(family, a.cfg.Currency, spot, res)

	outDir := filepath.Join(a.cfg.Out, family.Code+"_data")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", outDir)
	}

	summaryPath := filepath.Join(outDir, family.Code+"_summary_output.json")
	if err := report.Write(summary, summaryPath); err != nil {
		return err
	}

	plotPath := filepath.Join(outDir, family.Code+"_all_in_one_plot.png")
	if err := chart.Export(summary.Series(), a.cfg.Currency, plotPath); err != nil {
		return err
	}

	fmt.Println(report.Render(summary))
	a.logger.Info("analysis complete",
		zap.Int("transactions", summary.TotalTransactions),
		zap.Int("distinct_dates", a.prices.CacheSize()),
		zap.String("summary", summaryPath),
		zap.String("plot", plotPath))
	return nil
}
