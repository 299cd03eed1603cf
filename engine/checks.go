package engine

import (
	"context"
	"fmt"

	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

// check is one step of the validation chain. A check returns Valid to
// pass control to the next one; the first non-Valid state wins.
type check func(ctx context.Context, pendingTx transaction.PendingTx) (transaction.ValidationState, error)

func runChecks(ctx context.Context, pendingTx transaction.PendingTx, checks []check) (transaction.ValidationState, error) {
	for _, c := range checks {
		state, err := c(ctx, pendingTx)
		if err != nil {
			return transaction.Uninitialised, err
		}
		if !state.IsValid() {
			return state, nil
		}
	}
	return transaction.Valid, nil
}

// validateLight runs the cheap prefix of the chain against cached
// snapshot data only, for live typing feedback. No network calls.
func (e *baseEngine) validateLight(pendingTx transaction.PendingTx) transaction.PendingTx {
	state, _ := runChecks(context.Background(), pendingTx, []check{
		checkAmountSign,
		checkSufficientFunds,
	})
	return pendingTx.WithValidation(state)
}

// runFullChecks is the exhaustive pre-execution pass. Ordering is
// load-bearing: amount sign, destination, principal funds, fee-currency
// funds, in-flight conflicts, asset options, then limits with min
// before max and the payment-method cap before the tier cap.
func (e *baseEngine) runFullChecks(ctx context.Context, pendingTx transaction.PendingTx) (transaction.ValidationState, error) {
	return runChecks(ctx, pendingTx, []check{
		checkAmountSign,
		func(ctx context.Context, _ transaction.PendingTx) (transaction.ValidationState, error) {
			return e.strategy.CheckAddress(ctx)
		},
		e.checkFreshFunds,
		e.checkSufficientGas,
		e.checkNoTxInFlight,
		func(_ context.Context, px transaction.PendingTx) (transaction.ValidationState, error) {
			return e.strategy.CheckOptions(px), nil
		},
		e.checkLimits,
	})
}

func checkAmountSign(_ context.Context, pendingTx transaction.PendingTx) (transaction.ValidationState, error) {
	if !pendingTx.Amount.IsPositive() {
		return transaction.InvalidAmount, nil
	}
	return transaction.Valid, nil
}

func checkSufficientFunds(_ context.Context, pendingTx transaction.PendingTx) (transaction.ValidationState, error) {
	cmp, err := pendingTx.Amount.Cmp(pendingTx.AvailableBalance)
	if err != nil {
		return transaction.Uninitialised, err
	}
	if cmp > 0 {
		return transaction.InsufficientFunds, nil
	}
	return transaction.Valid, nil
}

// checkFreshFunds re-fetches the source balance instead of trusting the
// snapshot; ValidateAll must not rely on data cached at update time.
func (e *baseEngine) checkFreshFunds(ctx context.Context, pendingTx transaction.PendingTx) (transaction.ValidationState, error) {
	balance, err := e.balances.Balance(ctx, e.source.ID, e.source.Currency, true)
	if err != nil {
		return transaction.Uninitialised, fmt.Errorf("failed to refresh source balance: %w", err)
	}

	available := balance.Withdrawable
	if pendingTx.FeeAmount.Currency() == available.Currency() {
		remaining, err := available.Sub(pendingTx.FeeAmount)
		if err != nil {
			return transaction.Uninitialised, err
		}
		available, err = money.Max(remaining, money.Zero(remaining.Currency()))
		if err != nil {
			return transaction.Uninitialised, err
		}
	}

	cmp, err := pendingTx.Amount.Cmp(available)
	if err != nil {
		return transaction.Uninitialised, err
	}
	if cmp > 0 {
		return transaction.InsufficientFunds, nil
	}
	return transaction.Valid, nil
}

// checkSufficientGas compares the fee against the fee-bearing currency
// balance. For token assets that balance belongs to a different account
// than the principal, so this is deliberately independent of the funds
// check above.
func (e *baseEngine) checkSufficientGas(ctx context.Context, pendingTx transaction.PendingTx) (transaction.ValidationState, error) {
	if pendingTx.FeeAmount.IsZero() {
		return transaction.Valid, nil
	}

	feeBalance, err := e.strategy.FeeCurrencyBalance(ctx)
	if err != nil {
		return transaction.Uninitialised, fmt.Errorf("failed to fetch fee currency balance: %w", err)
	}

	cmp, err := pendingTx.FeeAmount.Cmp(feeBalance)
	if err != nil {
		return transaction.Uninitialised, err
	}
	if cmp > 0 {
		return transaction.InsufficientGas, nil
	}
	return transaction.Valid, nil
}

func (e *baseEngine) checkNoTxInFlight(ctx context.Context, _ transaction.PendingTx) (transaction.ValidationState, error) {
	pending, err := e.history.HasPendingTransactions(ctx, e.source.ID, e.source.Currency)
	if err != nil {
		return transaction.Uninitialised, fmt.Errorf("failed to check outstanding transactions: %w", err)
	}
	if pending {
		return transaction.HasTxInFlight, nil
	}
	return transaction.Valid, nil
}

// checkLimits enforces min before max, and the payment-method cap
// before the tier-based cap. Missing limits halt the flow loudly.
func (e *baseEngine) checkLimits(_ context.Context, pendingTx transaction.PendingTx) (transaction.ValidationState, error) {
	limits := pendingTx.Limits
	if limits == nil {
		return transaction.Uninitialised, fmt.Errorf("%w: %s -> %s",
			ErrMissingLimits, e.source.Currency, e.target.Currency)
	}

	cmp, err := pendingTx.Amount.Cmp(limits.Min)
	if err != nil {
		return transaction.Uninitialised, err
	}
	if cmp < 0 {
		return transaction.UnderMinLimit, nil
	}

	if limits.PaymentMethodMax != nil {
		cmp, err = pendingTx.Amount.Cmp(*limits.PaymentMethodMax)
		if err != nil {
			return transaction.Uninitialised, err
		}
		if cmp > 0 {
			return transaction.AbovePaymentMethodLimit, nil
		}
	}

	cmp, err = pendingTx.Amount.Cmp(limits.Max)
	if err != nil {
		return transaction.Uninitialised, err
	}
	if cmp > 0 {
		if e.tier == interfaces.TierGold {
			return transaction.OverGoldTierLimit, nil
		}
		return transaction.OverSilverTierLimit, nil
	}
	return transaction.Valid, nil
}
