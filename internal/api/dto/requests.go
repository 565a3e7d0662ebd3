package dto

import (
	"encoding/json"

	"github.com/ecotrack/ecotrack-backend/internal/model"
)

// CalculateCarbonRequest carries a batch of transactions to annotate.
// Transactions is a RawMessage so an absent or non-array value can be
// distinguished from an empty batch: that is the one malformed input the
// engine reports as a caller error instead of degrading.
type CalculateCarbonRequest struct {
	Transactions json.RawMessage `json:"transactions"`
}

// Decode validates the transactions field and unmarshals it. The second
// return value is a human-readable validation problem, empty when valid.
func (r CalculateCarbonRequest) Decode() ([]model.Transaction, string) {
	if len(r.Transactions) == 0 || string(r.Transactions) == "null" {
		return nil, "transactions array is required"
	}

	var txs []model.Transaction
	if err := json.Unmarshal(r.Transactions, &txs); err != nil {
		return nil, "transactions must be an array of transaction objects"
	}
	return txs, ""
}
