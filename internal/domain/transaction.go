// Package domain defines core data structures used throughout the analyzer.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLabelFormat is the label format used for report rows and series points.
const TimeLabelFormat = "2006-01-02 15:04:05"

// TxType direction of a wallet transaction.
type TxType string

const (
	// TxReceived coins arrived in the wallet.
	TxReceived TxType = "recv"
	// TxSent coins left the wallet.
	TxSent TxType = "sent"
)

// Valid reports whether the type is one of the known directions.
func (t TxType) Valid() bool {
	return t == TxReceived || t == TxSent
}

// Transfer sub-transfer inside a transaction.
type Transfer struct {
	Amount decimal.Decimal `json:"amount"`
}

// Transaction single wallet transaction as present in the input file.
type Transaction struct {
	TxID              string          `json:"txid"`
	BlockTime         int64           `json:"blockTime"`
	Type              TxType          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Fee               decimal.Decimal `json:"fee"`
	InternalTransfers []Transfer      `json:"internalTransfers,omitempty"`
}

// Time returns the transaction time in UTC.
func (t *Transaction) Time() time.Time {
	return time.Unix(t.BlockTime, 0).UTC()
}

// TimeLabel returns the human-readable UTC timestamp used in reports.
func (t *Transaction) TimeLabel() string {
	return t.Time().Format(TimeLabelFormat)
}
