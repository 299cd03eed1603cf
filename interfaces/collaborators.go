// Package interfaces declares the narrow contracts the transaction
// engine consumes. Implementations live with the wallet backend; the
// engine only ever sees these shapes. Mocks for all of them are
// generated into the mocks package.
package interfaces

import (
	"context"
	"math/big"

	"github.com/google/uuid"

	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

// AccountType classifies an account for limit purposes.
type AccountType string

const (
	AccountTypeTrading    AccountType = "TRADING"
	AccountTypePrivateKey AccountType = "PRIVATE_KEY"
	AccountTypeBank       AccountType = "BANK"
)

// Tier is the KYC verification tier of the user, which selects the
// tier-based maximum transfer limit.
type Tier int

const (
	TierNone Tier = iota
	TierSilver
	TierGold
)

// AccountBalance is the balance triple a provider reports for one
// account and currency.
type AccountBalance struct {
	Total        money.Money
	Withdrawable money.Money
	Pending      money.Money
}

// BalanceProvider reports current balances for an account. forceFresh
// bypasses any provider-side cache.
type BalanceProvider interface {
	Balance(ctx context.Context, accountID uuid.UUID, currency money.Currency, forceFresh bool) (*AccountBalance, error)
}

// FeeQuotes is a per-level fee quote in minor units of the fee-bearing
// currency. A nil level means the backend quoted nothing for it.
type FeeQuotes struct {
	Currency money.Currency
	Low      *big.Int
	Medium   *big.Int
	High     *big.Int
}

// FeeQuoteProvider quotes network or settlement fees for an asset. For
// token assets the quotes come back in the host chain's native currency.
type FeeQuoteProvider interface {
	FeeQuotes(ctx context.Context, asset money.Currency, hostChain money.Currency) (*FeeQuotes, error)
}

// RateConverter converts Money between currencies at a point-in-time
// rate, for display only.
type RateConverter interface {
	Convert(ctx context.Context, amount money.Money, to money.Currency) (money.Money, error)
}

// LimitsService returns the (min, max) bounds for a transfer between
// the given currencies and account-type pair at the user's tier,
// optionally folding in a payment-method-specific cap. A nil result is
// a configuration error the engine halts on.
type LimitsService interface {
	Limits(ctx context.Context, from, to money.Currency, source, target AccountType, tier Tier) (*transaction.Limits, error)
}

// AddressStatus is the outcome of destination validation.
type AddressStatus struct {
	Valid bool
	// IsContract is set when the destination is a deployed contract.
	IsContract bool
	// RequiresMemo is set when the destination rejects transfers that
	// carry no memo (exchange deposit addresses, typically).
	RequiresMemo bool
}

// AddressValidator validates a destination string for an asset family,
// both syntactically and against on-chain state where applicable.
type AddressValidator interface {
	Validate(ctx context.Context, asset money.Currency, address string) (*AddressStatus, error)
}

// ContractCodeReader reports whether an address has deployed code.
type ContractCodeReader interface {
	HasCode(ctx context.Context, address string) (bool, error)
}

// TransferPayload is the unsigned transfer the engine hands to the
// signing service. Data carries raw call data for contract transfers.
type TransferPayload struct {
	From   string
	To     string
	Amount money.Money
	Fee    money.Money
	Memo   string
	Data   []byte
}

// SignedPayload is an opaque signed transfer ready for submission.
type SignedPayload struct {
	Raw []byte
}

// Broadcaster signs and submits on-chain transfers. Broadcast returns
// the transaction hash.
type Broadcaster interface {
	Sign(ctx context.Context, payload *TransferPayload, secondPassword string) (*SignedPayload, error)
	Broadcast(ctx context.Context, signed *SignedPayload) (string, error)
}

// TransferState is the backend-reported state of a fiat transfer.
type TransferState string

const (
	TransferStatePending          TransferState = "PENDING"
	TransferStateComplete         TransferState = "COMPLETE"
	TransferStateRequiresApproval TransferState = "REQUIRES_APPROVAL"
	TransferStateError            TransferState = "ERROR"
)

// TransferError is the backend's reason for a failed fiat transfer.
type TransferError string

const (
	TransferErrorNone                TransferError = ""
	TransferErrorInsufficientBalance TransferError = "INSUFFICIENT_BALANCE"
	// TransferErrorRequiresUpdate means the linked bank's details are
	// stale and the user must refresh them before retrying.
	TransferErrorRequiresUpdate TransferError = "REQUIRES_UPDATE"
	// TransferErrorStaleBalance means the bank-side balance snapshot is
	// stale and must be refreshed before the transfer can settle.
	TransferErrorStaleBalance TransferError = "STALE_BALANCE"
	TransferErrorUnknown      TransferError = "UNKNOWN"
)

// TransferDirection distinguishes deposits from withdrawals.
type TransferDirection string

const (
	TransferDirectionDeposit    TransferDirection = "DEPOSIT"
	TransferDirectionWithdrawal TransferDirection = "WITHDRAWAL"
)

// BankTransfer is a fiat transfer as the bank service reports it.
type BankTransfer struct {
	ID     uuid.UUID
	BankID uuid.UUID
	Amount money.Money
	State  TransferState
	Error  TransferError
	// AuthorisationURL is set when the user must approve the transfer
	// out of band.
	AuthorisationURL string
}

// CreateTransferRequest starts a fiat transfer. CallbackURL is where
// the bank partner redirects after out-of-band authorisation.
type CreateTransferRequest struct {
	BankID      uuid.UUID
	Amount      money.Money
	Direction   TransferDirection
	CallbackURL string
}

// BankTransferService submits fiat transfers and exposes their status
// as a pollable resource.
type BankTransferService interface {
	CreateTransfer(ctx context.Context, req CreateTransferRequest) (*BankTransfer, error)
	TransferStatus(ctx context.Context, id uuid.UUID) (*BankTransfer, error)
	WithdrawalFee(ctx context.Context, bankID uuid.UUID, currency money.Currency) (money.Money, error)
}

// TxHistoryProvider answers whether the account has outstanding
// in-flight transactions that would conflict with a new one.
type TxHistoryProvider interface {
	HasPendingTransactions(ctx context.Context, accountID uuid.UUID, currency money.Currency) (bool, error)
}

// CacheTag names an externally-owned balance cache an engine is known
// to dirty on successful execution.
type CacheTag string

const (
	// CacheTradingBalances is the shared custodial trading-balance cache.
	CacheTradingBalances CacheTag = "trading-balances"
	// CacheBankLinks is the linked-bank metadata cache.
	CacheBankLinks CacheTag = "bank-links"
)

// BalanceCacheInvalidator marks externally-owned caches stale. This is
// a dirty flag, not a lock; the owning provider refreshes lazily.
type BalanceCacheInvalidator interface {
	Invalidate(ctx context.Context, tags ...CacheTag) error
}
