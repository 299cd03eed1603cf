package transaction

import (
	"github.com/frikke/txengine/money"
)

// MemoKind distinguishes the two wire formats a destination memo can
// take for assets that support one.
type MemoKind int

const (
	// MemoText is a free-text memo, at most MemoTextMaxLength bytes.
	MemoText MemoKind = iota
	// MemoID is a numeric memo identifier.
	MemoID
)

// MemoTextMaxLength is the longest text memo the rails accept.
const MemoTextMaxLength = 28

// Memo is an optional destination tag. Required is set when the
// destination has been flagged as rejecting transfers without one.
type Memo struct {
	Kind     MemoKind
	Value    string
	Required bool
}

// EngineExtras is the closed set of asset-specific state a snapshot can
// carry. Each engine family populates only the fields it supports;
// Memo and Description are the two caller-editable options, surfaced
// through the matching confirmation kinds.
type EngineExtras struct {
	Memo               *Memo
	Description        string
	WithdrawalLockDays uint32
}

func (e EngineExtras) clone() EngineExtras {
	out := e
	if e.Memo != nil {
		memo := *e.Memo
		out.Memo = &memo
	}
	return out
}

// Limits is the (min, max) transfer bounds scoped to the source/target
// account-type pair, with an optional tighter payment-method cap.
type Limits struct {
	Min money.Money
	Max money.Money
	// PaymentMethodMax, when set, is checked before the tier-based Max.
	PaymentMethodMax *money.Money
}

func (l *Limits) clone() *Limits {
	if l == nil {
		return nil
	}
	out := *l
	if l.PaymentMethodMax != nil {
		m := *l.PaymentMethodMax
		out.PaymentMethodMax = &m
	}
	return &out
}

// PendingTx is the snapshot of an in-progress transfer. It is replaced,
// never mutated: every engine operation returns a fresh copy so two
// racing updates can only leave the caller holding a stale snapshot,
// never a torn one. The engine never retains a snapshot.
type PendingTx struct {
	Amount           money.Money
	TotalBalance     money.Money
	AvailableBalance money.Money
	// FeeAmount is the fee at the currently selected level, in the
	// fee-bearing currency.
	FeeAmount money.Money
	// FeeForFullAvailable is the fee that would apply when sweeping the
	// full available balance.
	FeeForFullAvailable money.Money
	FeeSelection        FeeSelection
	Limits              *Limits
	Confirmations       []Confirmation
	Extras              EngineExtras
	Validation          ValidationState
}

// Clone returns a deep copy of the snapshot. Money values are immutable
// and shared as-is.
func (p PendingTx) Clone() PendingTx {
	out := p
	out.FeeSelection = p.FeeSelection.clone()
	out.Limits = p.Limits.clone()
	out.Extras = p.Extras.clone()
	out.Confirmations = append([]Confirmation(nil), p.Confirmations...)
	return out
}

// WithValidation returns a copy of the snapshot carrying the given
// validation state.
func (p PendingTx) WithValidation(state ValidationState) PendingTx {
	out := p.Clone()
	out.Validation = state
	return out
}
