package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRunningState_Apply(t *testing.T) {
	var state RunningState
	price := decimal.NewFromInt(100)

	state.Apply(Transaction{Type: TxReceived, Fee: decimal.NewFromFloat(0.01)}, decimal.NewFromInt(2), price)
	require.True(t, state.TotalReceived.Equal(decimal.NewFromInt(2)))
	require.True(t, state.TotalCost.Equal(decimal.NewFromInt(200)))
	require.True(t, state.Balance().Equal(decimal.NewFromInt(2)))

	// sending reduces the balance but not the cost basis
	state.Apply(Transaction{Type: TxSent, Fee: decimal.NewFromFloat(0.02)}, decimal.NewFromFloat(0.5), price)
	require.True(t, state.TotalSent.Equal(decimal.NewFromFloat(0.5)))
	require.True(t, state.TotalCost.Equal(decimal.NewFromInt(200)))
	require.True(t, state.Balance().Equal(decimal.NewFromFloat(1.5)))

	require.True(t, state.TotalFees.Equal(decimal.NewFromFloat(0.03)))
}

func TestRunningState_ReceiveOnlyIdentity(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(0.3),
		decimal.NewFromFloat(1.2),
		decimal.NewFromFloat(0.5),
	}
	price := decimal.NewFromInt(50)

	var state RunningState
	sum := decimal.Zero
	for _, a := range amounts {
		state.Apply(Transaction{Type: TxReceived}, a, price)
		sum = sum.Add(a)
	}

	require.True(t, state.Balance().Equal(sum))
	require.True(t, state.TotalCost.Equal(price.Mul(sum)))
}
