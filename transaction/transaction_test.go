package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

func TestFeeSelection_Contains(t *testing.T) {
	selection := transaction.FeeSelection{
		AvailableLevels: []transaction.FeeLevel{transaction.FeeRegular, transaction.FeePriority},
	}
	assert.True(t, selection.Contains(transaction.FeeRegular))
	assert.False(t, selection.Contains(transaction.FeeNone))
	assert.False(t, selection.Contains(transaction.FeeCustom))
}

func TestFeeSelection_Fee(t *testing.T) {
	regular := money.FromMinorUnits(200, money.BTC)
	custom := money.FromMinorUnits(999, money.BTC)
	selection := transaction.FeeSelection{
		SelectedLevel:   transaction.FeeRegular,
		AvailableLevels: []transaction.FeeLevel{transaction.FeeRegular, transaction.FeeCustom},
		FeesForLevels:   map[transaction.FeeLevel]money.Money{transaction.FeeRegular: regular},
		FeeCurrency:     money.BTC,
		CustomAmount:    &custom,
	}

	fee, ok := selection.Fee(transaction.FeeRegular)
	require.True(t, ok)
	assert.Equal(t, regular, fee)

	// None always resolves to zero.
	fee, ok = selection.Fee(transaction.FeeNone)
	require.True(t, ok)
	assert.True(t, fee.IsZero())
	assert.Equal(t, money.BTC, fee.Currency())

	fee, ok = selection.Fee(transaction.FeeCustom)
	require.True(t, ok)
	assert.Equal(t, custom, fee)

	// An unpriced level is not resolvable.
	_, ok = selection.Fee(transaction.FeePriority)
	assert.False(t, ok)

	// Custom without an amount is not resolvable either.
	selection.CustomAmount = nil
	_, ok = selection.Fee(transaction.FeeCustom)
	assert.False(t, ok)
}

func TestPendingTx_CloneIsDeep(t *testing.T) {
	pmMax := money.FromMinorUnits(50, money.USD)
	original := transaction.PendingTx{
		Amount: money.FromMinorUnits(10, money.USD),
		FeeSelection: transaction.FeeSelection{
			SelectedLevel:   transaction.FeeRegular,
			AvailableLevels: []transaction.FeeLevel{transaction.FeeRegular},
			FeesForLevels: map[transaction.FeeLevel]money.Money{
				transaction.FeeRegular: money.FromMinorUnits(1, money.USD),
			},
			FeeCurrency: money.USD,
		},
		Limits: &transaction.Limits{
			Min:              money.FromMinorUnits(10, money.USD),
			Max:              money.FromMinorUnits(100, money.USD),
			PaymentMethodMax: &pmMax,
		},
		Confirmations: []transaction.Confirmation{
			transaction.TextConfirmation(transaction.ConfirmationFrom, "Main wallet"),
		},
		Extras: transaction.EngineExtras{
			Memo: &transaction.Memo{Kind: transaction.MemoText, Value: "hello"},
		},
		Validation: transaction.Valid,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.FeeSelection.AvailableLevels[0] = transaction.FeePriority
	clone.FeeSelection.FeesForLevels[transaction.FeePriority] = money.FromMinorUnits(2, money.USD)
	clone.Confirmations[0].Text = "changed"
	clone.Extras.Memo.Value = "changed"
	clone.Limits.Min = money.FromMinorUnits(99, money.USD)

	assert.Equal(t, transaction.FeeRegular, original.FeeSelection.AvailableLevels[0])
	assert.Len(t, original.FeeSelection.FeesForLevels, 1)
	assert.Equal(t, "Main wallet", original.Confirmations[0].Text)
	assert.Equal(t, "hello", original.Extras.Memo.Value)
	assert.Equal(t, money.FromMinorUnits(10, money.USD), original.Limits.Min)
}

func TestValidationState_Messages(t *testing.T) {
	failures := []transaction.ValidationState{
		transaction.InvalidAmount,
		transaction.InvalidAddress,
		transaction.InsufficientFunds,
		transaction.InsufficientGas,
		transaction.HasTxInFlight,
		transaction.OptionInvalid,
		transaction.UnderMinLimit,
		transaction.AbovePaymentMethodLimit,
		transaction.OverSilverTierLimit,
		transaction.OverGoldTierLimit,
	}

	seen := make(map[string]bool)
	for _, state := range failures {
		assert.True(t, state.IsFailure(), state.String())
		assert.False(t, state.IsValid(), state.String())
		// Every failure kind has its own actionable message.
		msg := state.Message()
		assert.NotEmpty(t, msg, state.String())
		assert.False(t, seen[msg], "duplicate message for %s", state)
		seen[msg] = true
	}

	assert.True(t, transaction.Valid.IsValid())
	assert.False(t, transaction.Uninitialised.IsFailure())
}

func TestConfirmationKind_Editable(t *testing.T) {
	assert.True(t, transaction.ConfirmationMemo.Editable())
	assert.True(t, transaction.ConfirmationDescription.Editable())
	assert.False(t, transaction.ConfirmationFrom.Editable())
	assert.False(t, transaction.ConfirmationTotal.Editable())
	assert.False(t, transaction.ConfirmationEstimatedCompletion.Editable())
}

func TestResult(t *testing.T) {
	amount := money.FromMinorUnits(5, money.BTC)
	hashed := transaction.HashedResult("0xabc", amount)
	assert.True(t, hashed.IsHashed())
	assert.Equal(t, amount, hashed.Amount)

	unhashed := transaction.UnhashedResult("order-1", amount)
	assert.False(t, unhashed.IsHashed())
	assert.Equal(t, "order-1", unhashed.OrderID)
}
