// Package replay folds a wallet's transaction history, in input order,
// into running balance, cost and profit figures.
package replay

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vadiminshakov/coinreport/internal/domain"
)

type pricer interface {
	HistoricalPrice(ctx context.Context, coinID string, timestamp int64, currency string) (decimal.Decimal, error)
}

// Throttle is the proactive rate-limit guard: after every Every price
// lookups the replay pauses for Cooldown, independent of the provider's
// own 429 signaling. Every <= 0 disables it.
type Throttle struct {
	Every    int
	Cooldown time.Duration
}

// Result of a completed replay.
type Result struct {
	Transactions []domain.EnrichedTransaction
	State        domain.RunningState
	Counts       map[domain.TxType]int
}

// Replayer walks the transaction sequence one step at a time,
// maintaining the running state. Input order is trusted, nothing is
// reordered.
type Replayer struct {
	pricer   pricer
	family   domain.Family
	currency string
	spot     decimal.Decimal
	throttle Throttle
	logger   *zap.Logger
}

// New creates a replayer. spot is the current price fetched once before
// the replay begins; profit is marked to it for every historical point.
func New(p pricer, family domain.Family, currency string, spot decimal.Decimal, throttle Throttle, logger *zap.Logger) *Replayer {
	return &Replayer{
		pricer:   p,
		family:   family,
		currency: currency,
		spot:     spot,
		throttle: throttle,
		logger:   logger,
	}
}

// Run replays all transactions and returns the enriched records together
// with the final running state. Any pricer failure aborts the whole
// replay; there is no partial result.
func (r *Replayer) Run(ctx context.Context, txs []domain.Transaction) (Result, error) {
	res := Result{
		Transactions: make([]domain.EnrichedTransaction, 0, len(txs)),
		Counts:       make(map[domain.TxType]int),
	}

	requests := 0
	for _, tx := range txs {
		requests++
		if r.throttle.Every > 0 && requests > r.throttle.Every {
			r.logger.Info("pausing to avoid provider rate limiting",
				zap.Int("requests", requests-1),
				zap.Duration("cooldown", r.throttle.Cooldown))
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			case <-time.After(r.throttle.Cooldown):
			}
			requests = 1
		}

		historicalPrice, err := r.pricer.HistoricalPrice(ctx, r.family.ProviderID, tx.BlockTime, r.currency)
		if err != nil {
			return Result{}, errors.Wrapf(err, "transaction %s", tx.TxID)
		}

		amount := r.family.Amount(tx)
		res.State.Apply(tx, amount, historicalPrice)

		balance := res.State.Balance()
		walletValue := balance.Mul(historicalPrice)
		// profit is marked to the current spot price, not the price at
		// this point in time
		profit := balance.Mul(r.spot).Sub(res.State.TotalCost)

		res.Transactions = append(res.Transactions, domain.EnrichedTransaction{
			TxID:        tx.TxID,
			Time:        tx.TimeLabel(),
			Type:        tx.Type,
			Amount:      amount,
			Fee:         tx.Fee,
			PriceAtTime: historicalPrice,
			WalletValue: walletValue,
			Profit:      profit,
		})
		res.Counts[tx.Type]++

		r.logger.Info("processed transaction",
			zap.String("txid", tx.TxID),
			zap.String("time", tx.TimeLabel()),
			zap.String("type", string(tx.Type)),
			zap.String("amount", amount.String()),
			zap.String("price", historicalPrice.String()),
			zap.String("wallet_value", walletValue.String()),
			zap.String("profit", profit.String()))
	}

	return res, nil
}
