package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Family is the amount-resolution policy for a coin. Bitcoin-style wallets
// carry the full amount on the transaction itself, ethereum-style wallets
// split it across internal transfers that must be summed.
type Family struct {
	// Code short code from the wallet file, e.g. "btc".
	Code string
	// ProviderID market data provider identifier, e.g. "bitcoin".
	ProviderID string

	sumTransfers bool
}

var (
	Bitcoin  = Family{Code: "btc", ProviderID: "bitcoin"}
	Ethereum = Family{Code: "eth", ProviderID: "ethereum", sumTransfers: true}
)

// FamilyFor maps the wallet file's coin field to a family.
// Unknown values fall back to the ethereum family.
func FamilyFor(coin string) Family {
	if strings.ToLower(coin) == Bitcoin.Code {
		return Bitcoin
	}
	return Ethereum
}

// Amount resolves the effective transaction amount for this family.
func (f Family) Amount(tx Transaction) decimal.Decimal {
	if !f.sumTransfers {
		return tx.Amount
	}
	sum := decimal.Zero
	for _, transfer := range tx.InternalTransfers {
		sum = sum.Add(transfer.Amount)
	}
	return sum
}
