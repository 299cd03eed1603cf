package transaction

import (
	"time"

	"github.com/frikke/txengine/money"
)

// ConfirmationKind identifies a confirmation line item. The set is
// closed; display order is the order the engine appends them in.
type ConfirmationKind int

const (
	ConfirmationFrom ConfirmationKind = iota
	ConfirmationTo
	ConfirmationAmount
	ConfirmationTransactionFee
	ConfirmationCompoundNetworkFee
	ConfirmationTotal
	ConfirmationMemo
	ConfirmationDescription
	ConfirmationPaymentMethod
	ConfirmationEstimatedCompletion
)

var confirmationKindNames = map[ConfirmationKind]string{
	ConfirmationFrom:                "From",
	ConfirmationTo:                  "To",
	ConfirmationAmount:              "Amount",
	ConfirmationTransactionFee:      "TransactionFee",
	ConfirmationCompoundNetworkFee:  "CompoundNetworkFee",
	ConfirmationTotal:               "Total",
	ConfirmationMemo:                "Memo",
	ConfirmationDescription:         "Description",
	ConfirmationPaymentMethod:       "PaymentMethod",
	ConfirmationEstimatedCompletion: "EstimatedCompletion",
}

func (k ConfirmationKind) String() string {
	if name, ok := confirmationKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Editable reports whether the caller may change this line item through
// UpdateConfirmationOption. Only memo and description are user options;
// everything else is reference data.
func (k ConfirmationKind) Editable() bool {
	return k == ConfirmationMemo || k == ConfirmationDescription
}

// Confirmation is one typed line item assembled for user review. Which
// fields are populated depends on the kind: textual kinds carry Text,
// monetary kinds carry Amount (and a FiatEquivalent for display),
// EstimatedCompletion carries CompletesBy.
type Confirmation struct {
	Kind           ConfirmationKind
	Text           string
	Amount         *money.Money
	FiatEquivalent *money.Money
	CompletesBy    time.Time
}

// TextConfirmation builds a textual line item.
func TextConfirmation(kind ConfirmationKind, text string) Confirmation {
	return Confirmation{Kind: kind, Text: text}
}

// AmountConfirmation builds a monetary line item.
func AmountConfirmation(kind ConfirmationKind, amount money.Money) Confirmation {
	return Confirmation{Kind: kind, Amount: &amount}
}

// CompoundConfirmation builds a monetary line item with a fiat display
// equivalent alongside.
func CompoundConfirmation(kind ConfirmationKind, amount, fiat money.Money) Confirmation {
	return Confirmation{Kind: kind, Amount: &amount, FiatEquivalent: &fiat}
}

// CompletionConfirmation builds an estimated-completion line item.
func CompletionConfirmation(completesBy time.Time) Confirmation {
	return Confirmation{Kind: ConfirmationEstimatedCompletion, CompletesBy: completesBy}
}
