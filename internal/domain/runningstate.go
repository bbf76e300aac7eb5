package domain

import "github.com/shopspring/decimal"

// RunningState accumulators maintained while replaying a transaction
// history in input order. One instance per run, single writer.
type RunningState struct {
	TotalReceived decimal.Decimal
	TotalSent     decimal.Decimal
	TotalCost     decimal.Decimal
	TotalFees     decimal.Decimal
}

// Apply folds one transaction into the accumulators. Received amounts
// increase the cost basis at the historical price, sent amounts only
// reduce the balance. Fees accrue for every transaction.
func (s *RunningState) Apply(tx Transaction, amount, historicalPrice decimal.Decimal) {
	switch tx.Type {
	case TxReceived:
		s.TotalReceived = s.TotalReceived.Add(amount)
		s.TotalCost = s.TotalCost.Add(amount.Mul(historicalPrice))
	case TxSent:
		s.TotalSent = s.TotalSent.Add(amount)
	}
	s.TotalFees = s.TotalFees.Add(tx.Fee)
}

// Balance coin balance after all applied transactions.
func (s *RunningState) Balance() decimal.Decimal {
	return s.TotalReceived.Sub(s.TotalSent)
}
