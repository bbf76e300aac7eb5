package domain

import "github.com/shopspring/decimal"

// EnrichedTransaction is a transaction valued at its historical price,
// together with the wallet snapshot right after it. Immutable once
// appended to a report.
type EnrichedTransaction struct {
	TxID        string          `json:"txid"`
	Time        string          `json:"time"`
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
	WalletValue decimal.Decimal `json:"wallet_value"`
	Profit      decimal.Decimal `json:"profit"`
}

// SeriesPoint one point of the wallet value / profit series handed to
// the chart exporter.
type SeriesPoint struct {
	Label       string
	WalletValue decimal.Decimal
	Profit      decimal.Decimal
}

// SummaryReport aggregate of a full replay, serialized as the run's
// summary artifact.
type SummaryReport struct {
	Coin              string                `json:"coin"`
	Currency          string                `json:"currency"`
	TotalReceived     decimal.Decimal       `json:"total_received"`
	TotalSent         decimal.Decimal       `json:"total_sent"`
	Balance           decimal.Decimal       `json:"balance"`
	TotalCost         decimal.Decimal       `json:"total_cost"`
	CurrentValue      decimal.Decimal       `json:"current_value"`
	TotalProfit       decimal.Decimal       `json:"total_profit"`
	TotalFeesCoin     decimal.Decimal       `json:"total_fees_coin"`
	TotalFeesCurrency decimal.Decimal       `json:"total_fees_currency"`
	TotalTransactions int                   `json:"total_transactions"`
	CountsByType      map[TxType]int        `json:"transactions_by_type"`
	Transactions      []EnrichedTransaction `json:"transactions"`
}

// Series returns the ordered (label, wallet value, profit) points
// derived from the per-transaction details.
func (r *SummaryReport) Series() []SeriesPoint {
	points := make([]SeriesPoint, 0, len(r.Transactions))
	for _, tx := range r.Transactions {
		points = append(points, SeriesPoint{
			Label:       tx.Time,
			WalletValue: tx.WalletValue,
			Profit:      tx.Profit,
		})
	}
	return points
}
