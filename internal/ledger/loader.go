// Package ledger loads and validates wallet transaction files.
package ledger

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/coinreport/internal/domain"
)

var (
	// ErrNotFound the wallet file does not exist.
	ErrNotFound = errors.New("wallet file not found")
	// ErrMalformed the wallet file is not valid JSON or is missing
	// required fields.
	ErrMalformed = errors.New("wallet file is malformed")
)

// Wallet decoded contents of an input file.
type Wallet struct {
	Coin         string               `json:"coin"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Load reads and validates the wallet file at path. Validation fails
// fast at this boundary so malformed input never reaches the replay.
func Load(path string) (*Wallet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, path)
		}
		return nil, errors.Wrapf(err, "failed to read wallet file %s", path)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if _, ok := fields["transactions"]; !ok {
		return nil, errors.Wrap(ErrMalformed, "missing 'transactions' key")
	}

	var wallet Wallet
	if err := json.Unmarshal(raw, &wallet); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}

	for i, tx := range wallet.Transactions {
		if !tx.Type.Valid() {
			return nil, errors.Wrapf(ErrMalformed, "transaction %d: unknown type %q", i, tx.Type)
		}
		if tx.BlockTime <= 0 {
			return nil, errors.Wrapf(ErrMalformed, "transaction %d: missing blockTime", i)
		}
	}

	return &wallet, nil
}
