package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frikke/txengine/config"
	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

// estimatedDepositDays is how long a bank deposit usually takes to
// clear, shown as the estimated completion on review.
const estimatedDepositDays = 3

// NewFiatDepositEngine builds the engine for funding the custodial
// wallet from a linked bank. Settlement is asynchronous: PostExecute
// polls the transfer status and surfaces approval requirements as a
// non-error outcome.
func NewFiatDepositEngine(source, target Account, deps Dependencies) Engine {
	deps = deps.withDefaults()
	strategy := &fiatDepositStrategy{
		source:   source,
		target:   target,
		bank:     deps.Bank,
		balances: deps.Balances,
		cfg:      deps.Config,
		logger:   deps.Logger,
		now:      time.Now,
	}
	return newBaseEngine(source, target, ActionDeposit, strategy, deps)
}

// NewFiatWithdrawalEngine builds the engine for moving custodial fiat
// back to a linked bank. The fee is a flat institutional charge, not a
// level choice, and a successful execution dirties the shared
// trading-balance cache (invalidated by the Coordinator).
func NewFiatWithdrawalEngine(source, target Account, deps Dependencies) Engine {
	deps = deps.withDefaults()
	strategy := &fiatWithdrawalStrategy{
		source:   source,
		target:   target,
		bank:     deps.Bank,
		balances: deps.Balances,
		cfg:      deps.Config,
		logger:   deps.Logger,
		now:      time.Now,
	}
	return newBaseEngine(source, target, ActionWithdraw, strategy, deps)
}

type fiatDepositStrategy struct {
	source   Account
	target   Account
	bank     interfaces.BankTransferService
	balances interfaces.BalanceProvider
	cfg      *config.Config
	logger   *zap.Logger
	now      func() time.Time
}

func (s *fiatDepositStrategy) FeeSelection(ctx context.Context) (transaction.FeeSelection, error) {
	return feelessSelection(s.source.Currency), nil
}

func (s *fiatDepositStrategy) Extras(ctx context.Context) (transaction.EngineExtras, error) {
	return transaction.EngineExtras{}, nil
}

func (s *fiatDepositStrategy) Confirmations(ctx context.Context, pendingTx transaction.PendingTx) ([]transaction.Confirmation, error) {
	return []transaction.Confirmation{
		transaction.TextConfirmation(transaction.ConfirmationFrom, s.source.Label),
		transaction.TextConfirmation(transaction.ConfirmationTo, s.target.Label),
		transaction.TextConfirmation(transaction.ConfirmationPaymentMethod, "Bank transfer"),
		transaction.AmountConfirmation(transaction.ConfirmationAmount, pendingTx.Amount),
		transaction.CompletionConfirmation(settlementDay(s.now(), estimatedDepositDays)),
		transaction.TextConfirmation(transaction.ConfirmationDescription, pendingTx.Extras.Description),
	}, nil
}

func (s *fiatDepositStrategy) FeeCurrencyBalance(ctx context.Context) (money.Money, error) {
	balance, err := s.balances.Balance(ctx, s.source.ID, s.source.Currency, false)
	if err != nil {
		return money.Money{}, err
	}
	return balance.Withdrawable, nil
}

func (s *fiatDepositStrategy) CheckAddress(ctx context.Context) (transaction.ValidationState, error) {
	// Bank rails have no destination address to validate.
	return transaction.Valid, nil
}

func (s *fiatDepositStrategy) CheckOptions(pendingTx transaction.PendingTx) transaction.ValidationState {
	return transaction.Valid
}

func (s *fiatDepositStrategy) Execute(ctx context.Context, pendingTx transaction.PendingTx, secondPassword string) (transaction.Result, error) {
	transfer, err := s.bank.CreateTransfer(ctx, interfaces.CreateTransferRequest{
		BankID:      s.source.ID,
		Amount:      pendingTx.Amount,
		Direction:   interfaces.TransferDirectionDeposit,
		CallbackURL: s.cfg.ApprovalCallbackURL,
	})
	if err != nil {
		return transaction.Result{}, fmt.Errorf("%w: creating bank deposit: %v", ErrExecutionFailed, err)
	}

	s.logger.Info("Bank deposit submitted",
		zap.String("transfer_id", transfer.ID.String()),
		zap.String("amount", pendingTx.Amount.String()))
	return transaction.UnhashedResult(transfer.ID.String(), pendingTx.Amount), nil
}

// PostExecute polls the transfer until the backend reports a
// non-pending state, then maps that state. RequiresApproval and a
// requires-update error both resolve to the needs-approval signal; the
// caller resumes the flow after the user acts out of band.
func (s *fiatDepositStrategy) PostExecute(ctx context.Context, pendingTx transaction.PendingTx, result transaction.Result) (Settlement, error) {
	transferID, err := uuid.Parse(result.OrderID)
	if err != nil {
		return Settlement{}, fmt.Errorf("%w: malformed transfer id %q", ErrSettlementFailed, result.OrderID)
	}

	transfer, err := PollUntil(ctx,
		s.cfg.SettlementPollInterval,
		s.cfg.SettlementPollMaxAttempts,
		func(ctx context.Context) (*interfaces.BankTransfer, error) {
			return s.bank.TransferStatus(ctx, transferID)
		},
		func(t *interfaces.BankTransfer) bool {
			return t.State != interfaces.TransferStatePending
		},
	)
	if err != nil {
		return Settlement{}, fmt.Errorf("polling deposit settlement: %w", err)
	}

	return mapTransferOutcome(transfer, s.logger)
}

func (s *fiatDepositStrategy) InvalidatesCaches() []interfaces.CacheTag {
	return nil
}

type fiatWithdrawalStrategy struct {
	source   Account
	target   Account
	bank     interfaces.BankTransferService
	balances interfaces.BalanceProvider
	cfg      *config.Config
	logger   *zap.Logger
	now      func() time.Time

	// flatFee is fetched once per flow; the institutional fee does not
	// move while a withdrawal is being composed.
	flatFee *money.Money
}

func (s *fiatWithdrawalStrategy) FeeSelection(ctx context.Context) (transaction.FeeSelection, error) {
	return feelessSelection(s.source.Currency), nil
}

// FlatFee implements flatFeeProvider: the withdrawal fee is a flat
// institutional charge outside the level model.
func (s *fiatWithdrawalStrategy) FlatFee(ctx context.Context) (money.Money, error) {
	if s.flatFee != nil {
		return *s.flatFee, nil
	}
	fee, err := s.bank.WithdrawalFee(ctx, s.target.ID, s.source.Currency)
	if err != nil {
		return money.Money{}, err
	}
	s.flatFee = &fee
	return fee, nil
}

func (s *fiatWithdrawalStrategy) Extras(ctx context.Context) (transaction.EngineExtras, error) {
	return transaction.EngineExtras{
		WithdrawalLockDays: s.cfg.WithdrawalLockDays,
	}, nil
}

func (s *fiatWithdrawalStrategy) Confirmations(ctx context.Context, pendingTx transaction.PendingTx) ([]transaction.Confirmation, error) {
	total, err := pendingTx.Amount.Add(pendingTx.FeeAmount)
	if err != nil {
		return nil, err
	}
	return []transaction.Confirmation{
		transaction.TextConfirmation(transaction.ConfirmationFrom, s.source.Label),
		transaction.TextConfirmation(transaction.ConfirmationTo, s.target.Label),
		transaction.AmountConfirmation(transaction.ConfirmationAmount, pendingTx.Amount),
		transaction.AmountConfirmation(transaction.ConfirmationTransactionFee, pendingTx.FeeAmount),
		transaction.AmountConfirmation(transaction.ConfirmationTotal, total),
		transaction.CompletionConfirmation(settlementDay(s.now(), int(pendingTx.Extras.WithdrawalLockDays))),
	}, nil
}

func (s *fiatWithdrawalStrategy) FeeCurrencyBalance(ctx context.Context) (money.Money, error) {
	balance, err := s.balances.Balance(ctx, s.source.ID, s.source.Currency, false)
	if err != nil {
		return money.Money{}, err
	}
	return balance.Withdrawable, nil
}

func (s *fiatWithdrawalStrategy) CheckAddress(ctx context.Context) (transaction.ValidationState, error) {
	return transaction.Valid, nil
}

func (s *fiatWithdrawalStrategy) CheckOptions(pendingTx transaction.PendingTx) transaction.ValidationState {
	return transaction.Valid
}

func (s *fiatWithdrawalStrategy) Execute(ctx context.Context, pendingTx transaction.PendingTx, secondPassword string) (transaction.Result, error) {
	transfer, err := s.bank.CreateTransfer(ctx, interfaces.CreateTransferRequest{
		BankID:    s.target.ID,
		Amount:    pendingTx.Amount,
		Direction: interfaces.TransferDirectionWithdrawal,
	})
	if err != nil {
		return transaction.Result{}, fmt.Errorf("%w: creating bank withdrawal: %v", ErrExecutionFailed, err)
	}

	s.logger.Info("Bank withdrawal submitted",
		zap.String("transfer_id", transfer.ID.String()),
		zap.String("amount", pendingTx.Amount.String()),
		zap.Uint32("lock_days", pendingTx.Extras.WithdrawalLockDays))
	return transaction.UnhashedResult(transfer.ID.String(), pendingTx.Amount), nil
}

func (s *fiatWithdrawalStrategy) PostExecute(ctx context.Context, pendingTx transaction.PendingTx, result transaction.Result) (Settlement, error) {
	// Withdrawals settle on the bank's schedule; the submission itself
	// is the terminal step for this flow.
	return Settlement{State: SettlementComplete, Amount: result.Amount}, nil
}

func (s *fiatWithdrawalStrategy) InvalidatesCaches() []interfaces.CacheTag {
	return []interfaces.CacheTag{interfaces.CacheTradingBalances}
}

// feelessSelection is the fee shape of the fiat families: only
// FeeLevel.None, resolving to zero.
func feelessSelection(currency money.Currency) transaction.FeeSelection {
	return transaction.FeeSelection{
		SelectedLevel:   transaction.FeeNone,
		AvailableLevels: []transaction.FeeLevel{transaction.FeeNone},
		FeesForLevels:   map[transaction.FeeLevel]money.Money{},
		FeeCurrency:     currency,
	}
}

// settlementDay is midnight UTC n days out, kept day-granular so
// confirmation rebuilds stay identical within a flow.
func settlementDay(from time.Time, days int) time.Time {
	return from.UTC().Truncate(24 * time.Hour).AddDate(0, 0, days)
}

// mapTransferOutcome turns a terminal bank transfer state into the
// flow's settlement outcome. Needs-approval is control flow, never an
// error.
func mapTransferOutcome(transfer *interfaces.BankTransfer, log *zap.Logger) (Settlement, error) {
	switch transfer.State {
	case interfaces.TransferStateComplete:
		return Settlement{State: SettlementComplete, BankID: transfer.BankID, Amount: transfer.Amount}, nil
	case interfaces.TransferStateRequiresApproval:
		log.Info("Bank transfer requires out-of-band approval",
			zap.String("transfer_id", transfer.ID.String()),
			zap.String("auth_url", transfer.AuthorisationURL))
		return Settlement{
			State:            SettlementNeedsApproval,
			BankID:           transfer.BankID,
			Amount:           transfer.Amount,
			AuthorisationURL: transfer.AuthorisationURL,
		}, nil
	case interfaces.TransferStateError:
		switch transfer.Error {
		case interfaces.TransferErrorInsufficientBalance:
			return Settlement{}, ErrSettlementInsufficientBalance
		case interfaces.TransferErrorRequiresUpdate:
			// Stale bank details: the user has to refresh the link, the
			// same resume-after-action shape as an approval.
			return Settlement{
				State:            SettlementNeedsApproval,
				BankID:           transfer.BankID,
				Amount:           transfer.Amount,
				AuthorisationURL: transfer.AuthorisationURL,
			}, nil
		case interfaces.TransferErrorStaleBalance:
			return Settlement{}, ErrSettlementStaleBalanceNeedsFresh
		default:
			return Settlement{}, fmt.Errorf("%w: bank reported %s", ErrSettlementFailed, transfer.Error)
		}
	default:
		return Settlement{}, fmt.Errorf("%w: unexpected transfer state %s", ErrSettlementFailed, transfer.State)
	}
}
