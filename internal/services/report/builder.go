// Package report builds and persists the run summary.
package report

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/coinreport/internal/domain"
	"github.com/vadiminshakov/coinreport/internal/services/replay"
)

// Build folds the final running state and the enriched transaction
// sequence into the aggregate report. Current value and fiat fees are
// marked to the spot price; total profit is the profit of the last
// transaction.
func Build(family domain.Family, currency string, spot decimal.Decimal, res replay.Result) *domain.SummaryReport {
	balance := res.State.Balance()

	totalProfit := decimal.Zero
	if len(res.Transactions) > 0 {
		totalProfit = res.Transactions[len(res.Transactions)-1].Profit
	}

	return &domain.SummaryReport{
		Coin:              family.Code,
		Currency:          currency,
		TotalReceived:     res.State.TotalReceived,
		TotalSent:         res.State.TotalSent,
		Balance:           balance,
		TotalCost:         res.State.TotalCost,
		CurrentValue:      balance.Mul(spot),
		TotalProfit:       totalProfit,
		TotalFeesCoin:     res.State.TotalFees,
		TotalFeesCurrency: res.State.TotalFees.Mul(spot),
		TotalTransactions: len(res.Transactions),
		CountsByType:      res.Counts,
		Transactions:      res.Transactions,
	}
}

// Write serializes the report to path as indented JSON, overwriting any
// previous summary of the same name.
func Write(report *domain.SummaryReport, path string) error {
	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal summary report")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write summary to %s", path)
	}
	return nil
}
