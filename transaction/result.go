package transaction

import (
	"github.com/frikke/txengine/money"
)

// Result is the terminal outcome of executing a transfer: a hashed
// on-chain transaction id, or an unhashed backend order reference for
// fiat rails. It always carries the amount actually moved.
type Result struct {
	Amount  money.Money
	TxHash  string
	OrderID string
}

// HashedResult builds the outcome of an on-chain broadcast.
func HashedResult(txHash string, amount money.Money) Result {
	return Result{Amount: amount, TxHash: txHash}
}

// UnhashedResult builds the outcome of a fiat transfer submission.
func UnhashedResult(orderID string, amount money.Money) Result {
	return Result{Amount: amount, OrderID: orderID}
}

// IsHashed reports whether the result refers to an on-chain transaction.
func (r Result) IsHashed() bool {
	return r.TxHash != ""
}
