// Package engine implements the multi-asset transaction engine: one
// uniform construct → price → validate → confirm → execute → settle
// lifecycle across on-chain coins, tokens, dynamic self-custody chains
// and fiat bank rails.
package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

// Contract errors. These indicate programmer or configuration mistakes,
// never user input problems; user input problems land in the snapshot's
// validation state instead.
var (
	// ErrWrongCurrency: UpdateAmount was called with an amount not
	// denominated in the source asset.
	ErrWrongCurrency = errors.New("engine: amount currency does not match source asset")
	// ErrFeeLevelUnavailable: UpdateFeeLevel was asked for a level the
	// asset does not offer. Levels are never silently clamped.
	ErrFeeLevelUnavailable = errors.New("engine: fee level not available for this asset")
	// ErrConfirmationNotEditable: only memo and description line items
	// accept caller edits.
	ErrConfirmationNotEditable = errors.New("engine: confirmation is not editable")
	// ErrInvalidStateForExecution: Execute requires a freshly Valid
	// snapshot.
	ErrInvalidStateForExecution = errors.New("engine: pending transaction is not valid for execution")
	// ErrMissingLimits: the limits service returned nothing for this
	// currency/account pair. Halts the flow rather than defaulting.
	ErrMissingLimits = errors.New("engine: limits service returned no limits")
	// ErrMissingCustomFee: FeeCustom was selected without an amount.
	ErrMissingCustomFee = errors.New("engine: custom fee level requires a fee amount")
)

// Execution errors, surfaced from Execute and PostExecute. The engine
// never retries these; a failure after broadcast is not retriable.
var (
	ErrExecutionFailed                  = errors.New("engine: execution failed")
	ErrSettlementFailed                 = errors.New("engine: settlement failed")
	ErrSettlementInsufficientBalance    = errors.New("engine: settlement failed, insufficient balance at the bank")
	ErrSettlementStaleBalanceNeedsFresh = errors.New("engine: settlement failed, bank balance is stale and needs a refresh")
)

// Account is one endpoint of a transfer. For on-chain endpoints the
// Address carries the receive address; for bank endpoints the ID refers
// to the linked bank.
type Account struct {
	ID       uuid.UUID
	Currency money.Currency
	Type     interfaces.AccountType
	Address  string
	Label    string
}

// Action is what the transfer does with the funds.
type Action int

const (
	ActionSend Action = iota
	ActionDeposit
	ActionWithdraw
)

// SettlementState is the post-execution outcome class.
type SettlementState int

const (
	// SettlementComplete means the transfer needs no further action.
	SettlementComplete SettlementState = iota
	// SettlementNeedsApproval means the user must finish an out-of-band
	// authorisation step. It is control flow, not a failure, and must
	// never be shown as an error.
	SettlementNeedsApproval
)

// Settlement is the outcome of PostExecute. When State is
// SettlementNeedsApproval the BankID, Amount and AuthorisationURL carry
// enough to resume the flow after the user acts.
type Settlement struct {
	State            SettlementState
	BankID           uuid.UUID
	Amount           money.Money
	AuthorisationURL string
}

// Engine drives the lifecycle of one transfer. An engine is bound to
// exactly one (source, target, action) triple for its lifetime and
// holds no state beyond injected configuration: every operation takes a
// snapshot and returns a new one, so the caller owns all mutable state.
//
// Callers run the operations in lifecycle order: Initialise, then any
// interleaving of the Update operations, then BuildConfirmations,
// ValidateAll immediately before Execute, then PostExecute. ValidateAll
// must be re-run before Execute; a stale Valid state is not trusted.
type Engine interface {
	Initialise(ctx context.Context) (transaction.PendingTx, error)
	UpdateAmount(ctx context.Context, amount money.Money, pendingTx transaction.PendingTx) (transaction.PendingTx, error)
	UpdateFeeLevel(ctx context.Context, pendingTx transaction.PendingTx, level transaction.FeeLevel, customFee *money.Money) (transaction.PendingTx, error)
	UpdateConfirmationOption(ctx context.Context, pendingTx transaction.PendingTx, value transaction.Confirmation) (transaction.PendingTx, error)
	BuildConfirmations(ctx context.Context, pendingTx transaction.PendingTx) (transaction.PendingTx, error)
	ValidateAmount(ctx context.Context, pendingTx transaction.PendingTx) (transaction.PendingTx, error)
	ValidateAll(ctx context.Context, pendingTx transaction.PendingTx) (transaction.PendingTx, error)
	Execute(ctx context.Context, pendingTx transaction.PendingTx, secondPassword string) (transaction.Result, error)
	PostExecute(ctx context.Context, pendingTx transaction.PendingTx, result transaction.Result) (Settlement, error)

	// InvalidatesCaches declares the externally-owned caches a
	// successful execution dirties. The Coordinator performs the
	// invalidation; the engine never reaches into shared state itself.
	InvalidatesCaches() []interfaces.CacheTag
}
