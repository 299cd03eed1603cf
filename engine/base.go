package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

// assetStrategy holds the points of true variation between asset
// families. Everything else (snapshot bookkeeping, fee-level handling,
// the validation chain, the execute precondition) lives in baseEngine.
type assetStrategy interface {
	// FeeSelection fetches fee quotes and applies the family's default
	// level policy.
	FeeSelection(ctx context.Context) (transaction.FeeSelection, error)
	// Extras seeds the asset-specific snapshot extras.
	Extras(ctx context.Context) (transaction.EngineExtras, error)
	// Confirmations assembles the review line items for the snapshot.
	// Pure with respect to the snapshot: never touches balances or fees.
	Confirmations(ctx context.Context, pendingTx transaction.PendingTx) ([]transaction.Confirmation, error)
	// FeeCurrencyBalance returns the balance available to pay fees, in
	// the fee-bearing currency. For token assets this is a different
	// account than the principal.
	FeeCurrencyBalance(ctx context.Context) (money.Money, error)
	// CheckAddress validates the destination. Families without an
	// address concept (fiat) return Valid.
	CheckAddress(ctx context.Context) (transaction.ValidationState, error)
	// CheckOptions validates asset-specific user options (memo format,
	// description) against the snapshot.
	CheckOptions(pendingTx transaction.PendingTx) transaction.ValidationState
	// Execute moves the funds.
	Execute(ctx context.Context, pendingTx transaction.PendingTx, secondPassword string) (transaction.Result, error)
	// PostExecute performs asset-specific asynchronous follow-up.
	PostExecute(ctx context.Context, pendingTx transaction.PendingTx, result transaction.Result) (Settlement, error)
	// InvalidatesCaches declares the caches dirtied by Execute.
	InvalidatesCaches() []interfaces.CacheTag
}

// baseEngine implements the shared transfer lifecycle over an injected
// assetStrategy. It is bound to one (source, target, action) triple and
// holds only immutable configuration.
type baseEngine struct {
	source   Account
	target   Account
	action   Action
	tier     interfaces.Tier
	balances interfaces.BalanceProvider
	limits   interfaces.LimitsService
	history  interfaces.TxHistoryProvider
	strategy assetStrategy
	logger   *zap.Logger
}

func (e *baseEngine) Initialise(ctx context.Context) (transaction.PendingTx, error) {
	feeSelection, err := e.strategy.FeeSelection(ctx)
	if err != nil {
		return transaction.PendingTx{}, fmt.Errorf("failed to fetch fee options: %w", err)
	}

	extras, err := e.strategy.Extras(ctx)
	if err != nil {
		return transaction.PendingTx{}, fmt.Errorf("failed to seed engine defaults: %w", err)
	}

	balance, err := e.balances.Balance(ctx, e.source.ID, e.source.Currency, false)
	if err != nil {
		return transaction.PendingTx{}, fmt.Errorf("failed to fetch source balance: %w", err)
	}

	limits, err := e.limits.Limits(ctx, e.source.Currency, e.target.Currency, e.source.Type, e.target.Type, e.tier)
	if err != nil {
		return transaction.PendingTx{}, fmt.Errorf("failed to fetch limits: %w", err)
	}
	if limits == nil {
		return transaction.PendingTx{}, fmt.Errorf("%w: %s -> %s", ErrMissingLimits, e.source.Currency, e.target.Currency)
	}

	pendingTx := transaction.PendingTx{
		Amount:       money.Zero(e.source.Currency),
		TotalBalance: balance.Total,
		FeeSelection: feeSelection,
		Limits:       limits,
		Extras:       extras,
		Validation:   transaction.Uninitialised,
	}
	pendingTx, err = e.refreshFee(ctx, pendingTx)
	if err != nil {
		return transaction.PendingTx{}, err
	}

	e.logger.Debug("Engine initialised",
		zap.String("source", string(e.source.Currency)),
		zap.String("target", string(e.target.Currency)),
		zap.String("fee_level", pendingTx.FeeSelection.SelectedLevel.String()))

	return pendingTx, nil
}

func (e *baseEngine) UpdateAmount(ctx context.Context, amount money.Money, pendingTx transaction.PendingTx) (transaction.PendingTx, error) {
	if amount.Currency() != e.source.Currency {
		return transaction.PendingTx{}, fmt.Errorf("%w: got %s, want %s",
			ErrWrongCurrency, amount.Currency(), e.source.Currency)
	}

	out := pendingTx.Clone()
	out.Amount = amount
	out, err := e.refreshFee(ctx, out)
	if err != nil {
		return transaction.PendingTx{}, err
	}
	return e.validateLight(out), nil
}

func (e *baseEngine) UpdateFeeLevel(ctx context.Context, pendingTx transaction.PendingTx, level transaction.FeeLevel, customFee *money.Money) (transaction.PendingTx, error) {
	if !pendingTx.FeeSelection.Contains(level) {
		return transaction.PendingTx{}, fmt.Errorf("%w: %s", ErrFeeLevelUnavailable, level)
	}
	if level == transaction.FeeCustom && customFee == nil {
		return transaction.PendingTx{}, ErrMissingCustomFee
	}

	out := pendingTx.Clone()
	out.FeeSelection.SelectedLevel = level
	if level == transaction.FeeCustom {
		if customFee.Currency() != pendingTx.FeeSelection.FeeCurrency {
			return transaction.PendingTx{}, fmt.Errorf("%w: custom fee in %s, fee currency is %s",
				ErrWrongCurrency, customFee.Currency(), pendingTx.FeeSelection.FeeCurrency)
		}
		fee := *customFee
		out.FeeSelection.CustomAmount = &fee
	}
	out, err := e.refreshFee(ctx, out)
	if err != nil {
		return transaction.PendingTx{}, err
	}
	return e.validateLight(out), nil
}

func (e *baseEngine) UpdateConfirmationOption(ctx context.Context, pendingTx transaction.PendingTx, value transaction.Confirmation) (transaction.PendingTx, error) {
	if !value.Kind.Editable() {
		return transaction.PendingTx{}, fmt.Errorf("%w: %s", ErrConfirmationNotEditable, value.Kind)
	}

	out := pendingTx.Clone()
	switch value.Kind {
	case transaction.ConfirmationMemo:
		if out.Extras.Memo == nil {
			out.Extras.Memo = &transaction.Memo{}
		}
		out.Extras.Memo.Value = value.Text
	case transaction.ConfirmationDescription:
		out.Extras.Description = value.Text
	}

	for i := range out.Confirmations {
		if out.Confirmations[i].Kind == value.Kind {
			out.Confirmations[i].Text = value.Text
		}
	}
	return out, nil
}

func (e *baseEngine) BuildConfirmations(ctx context.Context, pendingTx transaction.PendingTx) (transaction.PendingTx, error) {
	confirmations, err := e.strategy.Confirmations(ctx, pendingTx)
	if err != nil {
		return transaction.PendingTx{}, fmt.Errorf("failed to build confirmations: %w", err)
	}
	out := pendingTx.Clone()
	out.Confirmations = confirmations
	return out, nil
}

func (e *baseEngine) ValidateAmount(ctx context.Context, pendingTx transaction.PendingTx) (transaction.PendingTx, error) {
	return e.validateLight(pendingTx), nil
}

func (e *baseEngine) ValidateAll(ctx context.Context, pendingTx transaction.PendingTx) (transaction.PendingTx, error) {
	state, err := e.runFullChecks(ctx, pendingTx)
	if err != nil {
		return transaction.PendingTx{}, err
	}
	return pendingTx.WithValidation(state), nil
}

func (e *baseEngine) Execute(ctx context.Context, pendingTx transaction.PendingTx, secondPassword string) (transaction.Result, error) {
	if !pendingTx.Validation.IsValid() {
		return transaction.Result{}, fmt.Errorf("%w: state is %s",
			ErrInvalidStateForExecution, pendingTx.Validation)
	}

	result, err := e.strategy.Execute(ctx, pendingTx, secondPassword)
	if err != nil {
		e.logger.Error("Transfer execution failed",
			zap.String("source", string(e.source.Currency)),
			zap.String("amount", pendingTx.Amount.String()),
			zap.Error(err))
		return transaction.Result{}, err
	}

	e.logger.Info("Transfer executed",
		zap.String("source", string(e.source.Currency)),
		zap.String("amount", result.Amount.String()),
		zap.Bool("hashed", result.IsHashed()))
	return result, nil
}

func (e *baseEngine) PostExecute(ctx context.Context, pendingTx transaction.PendingTx, result transaction.Result) (Settlement, error) {
	return e.strategy.PostExecute(ctx, pendingTx, result)
}

func (e *baseEngine) InvalidatesCaches() []interfaces.CacheTag {
	return e.strategy.InvalidatesCaches()
}

// flatFeeProvider is implemented by strategies whose fee is a flat
// institutional charge outside the fee-level model (fiat withdrawal).
// FeeLevel.None still resolves to zero in the selection; the flat fee
// replaces the snapshot's FeeAmount.
type flatFeeProvider interface {
	FlatFee(ctx context.Context) (money.Money, error)
}

// refreshFee recomputes the fee at the selected level and the derived
// balance figures. availableBalance is clamped at zero.
func (e *baseEngine) refreshFee(ctx context.Context, pendingTx transaction.PendingTx) (transaction.PendingTx, error) {
	fee, ok := pendingTx.FeeSelection.SelectedFee()
	if !ok {
		return transaction.PendingTx{}, fmt.Errorf("%w: %s",
			ErrFeeLevelUnavailable, pendingTx.FeeSelection.SelectedLevel)
	}
	if provider, isFlat := e.strategy.(flatFeeProvider); isFlat {
		flat, err := provider.FlatFee(ctx)
		if err != nil {
			return transaction.PendingTx{}, fmt.Errorf("failed to fetch flat fee: %w", err)
		}
		fee = flat
	}

	out := pendingTx
	out.FeeAmount = fee
	out.FeeForFullAvailable = fee

	available := out.TotalBalance
	if fee.Currency() == out.TotalBalance.Currency() {
		remaining, err := out.TotalBalance.Sub(fee)
		if err != nil {
			return transaction.PendingTx{}, err
		}
		available = remaining
	}
	clamped, err := money.Max(available, money.Zero(available.Currency()))
	if err != nil {
		return transaction.PendingTx{}, err
	}
	out.AvailableBalance = clamped
	return out, nil
}
