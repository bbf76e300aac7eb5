// Package pricer resolves current and historical market prices through a
// market data client, caching historical lookups by calendar date.
package pricer

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vadiminshakov/coinreport/pkg/retrier"
)

// histDateFormat is the provider's day-granularity date format.
const histDateFormat = "02-01-2006"

// ErrRateLimitExceeded a historical lookup exhausted all retry attempts.
var ErrRateLimitExceeded = errors.New("rate limit retry attempts exhausted")

type marketClient interface {
	SimplePrice(ctx context.Context, coinID, currency string) (decimal.Decimal, error)
	HistoricalPrice(ctx context.Context, coinID, date, currency string) (decimal.Decimal, error)
}

// Service fetches prices with memoization and rate-limit-aware retry.
type Service struct {
	client  marketClient
	cache   *PriceCache
	retrier *retrier.Retrier
	logger  *zap.Logger
}

// New creates a price service with its own empty cache.
func New(client marketClient, r *retrier.Retrier, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		cache:   NewPriceCache(),
		retrier: r,
		logger:  logger,
	}
}

// CurrentPrice fetches the spot price. Single attempt: the spot price is
// needed once, up front, and without it the rest of the run is
// meaningless, so the caller aborts on error.
func (s *Service) CurrentPrice(ctx context.Context, coinID, currency string) (decimal.Decimal, error) {
	return s.client.SimplePrice(ctx, coinID, currency)
}

// HistoricalPrice returns the price at the calendar day of the given unix
// timestamp, serving repeated same-day lookups from cache. On cache miss
// the remote call runs under the retry policy; only successful fetches
// are cached, so at most one remote fetch per date succeeds per run.
func (s *Service) HistoricalPrice(ctx context.Context, coinID string, timestamp int64, currency string) (decimal.Decimal, error) {
	date := time.Unix(timestamp, 0).UTC().Format(histDateFormat)

	if price, ok := s.cache.Get(date); ok {
		return price, nil
	}

	attempt := 0
	price, err := retrier.DoWithData(s.retrier, ctx, func(ctx context.Context) (decimal.Decimal, error) {
		attempt++
		p, err := s.client.HistoricalPrice(ctx, coinID, date, currency)
		if err != nil {
			s.logger.Warn("historical price fetch failed",
				zap.String("date", date),
				zap.Int("attempt", attempt),
				zap.Error(err))
		}
		return p, err
	})
	if err != nil {
		if errors.Is(err, retrier.ErrRetriesExceeded) {
			return decimal.Zero, errors.Wrapf(ErrRateLimitExceeded, "historical price for %s", date)
		}
		return decimal.Zero, err
	}

	s.cache.Put(date, price)
	return price, nil
}

// CacheSize reports how many distinct dates have been fetched so far.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}
