package engine_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frikke/txengine/engine"
	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

func btcQuotes(low, medium, high int64) *interfaces.FeeQuotes {
	quotes := &interfaces.FeeQuotes{Currency: money.BTC}
	if low > 0 {
		quotes.Low = big.NewInt(low)
	}
	if medium > 0 {
		quotes.Medium = big.NewInt(medium)
	}
	if high > 0 {
		quotes.High = big.NewInt(high)
	}
	return quotes
}

func btcLimits(minSats, maxSats int64) *transaction.Limits {
	return &transaction.Limits{
		Min: money.FromMinorUnits(minSats, money.BTC),
		Max: money.FromMinorUnits(maxSats, money.BTC),
	}
}

func minorOf(t *testing.T, m money.Money) int64 {
	t.Helper()
	return m.MinorUnits().Int64()
}

func TestNativeCoinEngine_Initialise(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(50, 200, 500), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, false).
		Return(balanceOf(100_000, money.BTC), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(100, 10_000_000), nil)

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)

	assert.Equal(t, transaction.FeeRegular, pendingTx.FeeSelection.SelectedLevel)
	assert.Equal(t, []transaction.FeeLevel{
		transaction.FeeRegular,
		transaction.FeePriority,
		transaction.FeeCustom,
	}, pendingTx.FeeSelection.AvailableLevels)
	// The quoted low tier has no user-facing level and must not leak in.
	assert.Len(t, pendingTx.FeeSelection.FeesForLevels, 2)

	assert.EqualValues(t, 200, minorOf(t, pendingTx.FeeAmount))
	assert.EqualValues(t, 200, minorOf(t, pendingTx.FeeForFullAvailable))
	assert.EqualValues(t, 100_000, minorOf(t, pendingTx.TotalBalance))
	assert.EqualValues(t, 99_800, minorOf(t, pendingTx.AvailableBalance))
	assert.True(t, pendingTx.Amount.IsZero())
	assert.Equal(t, transaction.Uninitialised, pendingTx.Validation)
}

func TestNativeCoinEngine_InitialiseClampsAvailableAtZero(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "Dust Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(0, 5_000, 9_000), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, false).
		Return(balanceOf(1_200, money.BTC), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(100, 10_000_000), nil)

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)

	assert.True(t, pendingTx.AvailableBalance.IsZero())
	assert.EqualValues(t, 1_200, minorOf(t, pendingTx.TotalBalance))
}

func TestNativeCoinEngine_UpdateAmount(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(50, 200, 500), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, false).
		Return(balanceOf(100_000, money.BTC), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(100, 10_000_000), nil)

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)

	t.Run("valid amount", func(t *testing.T) {
		updated, err := e.UpdateAmount(context.Background(), money.FromMinorUnits(500, money.BTC), pendingTx)
		require.NoError(t, err)
		assert.EqualValues(t, 500, minorOf(t, updated.Amount))
		assert.Equal(t, transaction.Valid, updated.Validation)
	})

	t.Run("amount over cached available", func(t *testing.T) {
		updated, err := e.UpdateAmount(context.Background(), money.FromMinorUnits(99_900, money.BTC), pendingTx)
		require.NoError(t, err)
		assert.Equal(t, transaction.InsufficientFunds, updated.Validation)
	})

	t.Run("zero amount", func(t *testing.T) {
		updated, err := e.UpdateAmount(context.Background(), money.Zero(money.BTC), pendingTx)
		require.NoError(t, err)
		assert.Equal(t, transaction.InvalidAmount, updated.Validation)
	})

	t.Run("wrong currency", func(t *testing.T) {
		_, err := e.UpdateAmount(context.Background(), money.FromMinorUnits(500, money.ETH), pendingTx)
		require.ErrorIs(t, err, engine.ErrWrongCurrency)
	})

	t.Run("repeated update is a fixed point", func(t *testing.T) {
		amount := money.FromMinorUnits(1_234, money.BTC)
		first, err := e.UpdateAmount(context.Background(), amount, pendingTx)
		require.NoError(t, err)
		second, err := e.UpdateAmount(context.Background(), amount, first)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("input snapshot untouched", func(t *testing.T) {
		_, err := e.UpdateAmount(context.Background(), money.FromMinorUnits(777, money.BTC), pendingTx)
		require.NoError(t, err)
		assert.True(t, pendingTx.Amount.IsZero())
		assert.Equal(t, transaction.Uninitialised, pendingTx.Validation)
	})
}

func TestNativeCoinEngine_UpdateFeeLevel(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(50, 200, 500), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, false).
		Return(balanceOf(100_000, money.BTC), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(100, 10_000_000), nil)

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)

	t.Run("switch to priority", func(t *testing.T) {
		updated, err := e.UpdateFeeLevel(context.Background(), pendingTx, transaction.FeePriority, nil)
		require.NoError(t, err)
		assert.Equal(t, transaction.FeePriority, updated.FeeSelection.SelectedLevel)
		assert.EqualValues(t, 500, minorOf(t, updated.FeeAmount))
		assert.EqualValues(t, 99_500, minorOf(t, updated.AvailableBalance))
	})

	t.Run("custom fee applied", func(t *testing.T) {
		custom := money.FromMinorUnits(321, money.BTC)
		updated, err := e.UpdateFeeLevel(context.Background(), pendingTx, transaction.FeeCustom, &custom)
		require.NoError(t, err)
		assert.Equal(t, transaction.FeeCustom, updated.FeeSelection.SelectedLevel)
		assert.EqualValues(t, 321, minorOf(t, updated.FeeAmount))
	})

	t.Run("custom without amount", func(t *testing.T) {
		_, err := e.UpdateFeeLevel(context.Background(), pendingTx, transaction.FeeCustom, nil)
		require.ErrorIs(t, err, engine.ErrMissingCustomFee)
	})

	t.Run("unavailable level", func(t *testing.T) {
		_, err := e.UpdateFeeLevel(context.Background(), pendingTx, transaction.FeeNone, nil)
		require.ErrorIs(t, err, engine.ErrFeeLevelUnavailable)
	})
}

func TestNativeCoinEngine_BuildConfirmationsIsIdempotent(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(50, 200, 500), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, false).
		Return(balanceOf(100_000, money.BTC), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(100, 10_000_000), nil)
	m.converter.EXPECT().Convert(gomock.Any(), gomock.Any(), money.USD).
		DoAndReturn(func(_ context.Context, in money.Money, to money.Currency) (money.Money, error) {
			// Deterministic stand-in rate: 1 minor unit in, 2 cents out.
			return money.FromMinorUnits(in.MinorUnits().Int64()*2, to), nil
		}).AnyTimes()

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)
	pendingTx, err = e.UpdateAmount(context.Background(), money.FromMinorUnits(1_000, money.BTC), pendingTx)
	require.NoError(t, err)

	first, err := e.BuildConfirmations(context.Background(), pendingTx)
	require.NoError(t, err)
	second, err := e.BuildConfirmations(context.Background(), first)
	require.NoError(t, err)

	assert.Equal(t, first.Confirmations, second.Confirmations)

	kinds := make([]transaction.ConfirmationKind, 0, len(first.Confirmations))
	for _, c := range first.Confirmations {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []transaction.ConfirmationKind{
		transaction.ConfirmationFrom,
		transaction.ConfirmationTo,
		transaction.ConfirmationAmount,
		transaction.ConfirmationCompoundNetworkFee,
		transaction.ConfirmationTotal,
	}, kinds)

	// An unlabelled target shows its address.
	assert.Equal(t, "1TargetAddr", first.Confirmations[1].Text)
	// Total folds the fee in when it shares the transfer currency.
	require.NotNil(t, first.Confirmations[4].Amount)
	assert.EqualValues(t, 1_200, minorOf(t, *first.Confirmations[4].Amount))
	require.NotNil(t, first.Confirmations[3].FiatEquivalent)
	assert.Equal(t, money.USD, first.Confirmations[3].FiatEquivalent.Currency())
}

func TestNativeCoinEngine_ValidateAllLimitOrdering(t *testing.T) {
	fiftySats := money.FromMinorUnits(50, money.BTC)

	tests := []struct {
		name       string
		tier       interfaces.Tier
		limits     *transaction.Limits
		amountSats int64
		want       transaction.ValidationState
	}{
		{
			name:       "under minimum",
			tier:       interfaces.TierSilver,
			limits:     btcLimits(10, 100),
			amountSats: 5,
			want:       transaction.UnderMinLimit,
		},
		{
			name: "payment method cap wins over tier cap",
			tier: interfaces.TierSilver,
			limits: &transaction.Limits{
				Min:              money.FromMinorUnits(10, money.BTC),
				Max:              money.FromMinorUnits(100, money.BTC),
				PaymentMethodMax: &fiftySats,
			},
			amountSats: 75,
			want:       transaction.AbovePaymentMethodLimit,
		},
		{
			name:       "over silver tier maximum",
			tier:       interfaces.TierSilver,
			limits:     btcLimits(10, 100),
			amountSats: 150,
			want:       transaction.OverSilverTierLimit,
		},
		{
			name:       "over gold tier maximum",
			tier:       interfaces.TierGold,
			limits:     btcLimits(10, 100),
			amountSats: 150,
			want:       transaction.OverGoldTierLimit,
		},
		{
			name:       "within bounds",
			tier:       interfaces.TierSilver,
			limits:     btcLimits(10, 100),
			amountSats: 50,
			want:       transaction.Valid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, deps := newEngineMocks(t)
			deps.Tier = tt.tier
			source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
			target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

			m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
				Return(btcQuotes(0, 200, 500), nil)
			m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, gomock.Any()).
				Return(balanceOf(1_000_000, money.BTC), nil).AnyTimes()
			m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, tt.tier).
				Return(tt.limits, nil)
			m.validator.EXPECT().Validate(gomock.Any(), money.BTC, target.Address).
				Return(&interfaces.AddressStatus{Valid: true}, nil).AnyTimes()
			m.history.EXPECT().HasPendingTransactions(gomock.Any(), source.ID, money.BTC).
				Return(false, nil).AnyTimes()

			e := engine.NewNativeCoinEngine(source, target, deps)
			pendingTx, err := e.Initialise(context.Background())
			require.NoError(t, err)
			pendingTx, err = e.UpdateAmount(context.Background(), money.FromMinorUnits(tt.amountSats, money.BTC), pendingTx)
			require.NoError(t, err)

			validated, err := e.ValidateAll(context.Background(), pendingTx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, validated.Validation)
		})
	}
}

func TestNativeCoinEngine_ValidateAllRejectsBadAddress(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "not-an-address", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(0, 200, 500), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, gomock.Any()).
		Return(balanceOf(1_000_000, money.BTC), nil).AnyTimes()
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(10, 10_000_000), nil)
	m.validator.EXPECT().Validate(gomock.Any(), money.BTC, target.Address).
		Return(&interfaces.AddressStatus{Valid: false}, nil)

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)
	pendingTx, err = e.UpdateAmount(context.Background(), money.FromMinorUnits(500, money.BTC), pendingTx)
	require.NoError(t, err)

	validated, err := e.ValidateAll(context.Background(), pendingTx)
	require.NoError(t, err)
	assert.Equal(t, transaction.InvalidAddress, validated.Validation)
}

func TestNativeCoinEngine_Execute(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(0, 200, 500), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, false).
		Return(balanceOf(100_000, money.BTC), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(10, 10_000_000), nil)

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)
	pendingTx, err = e.UpdateAmount(context.Background(), money.FromMinorUnits(500, money.BTC), pendingTx)
	require.NoError(t, err)

	t.Run("rejects snapshot not validated", func(t *testing.T) {
		stale := pendingTx.WithValidation(transaction.Uninitialised)
		_, err := e.Execute(context.Background(), stale, "")
		require.ErrorIs(t, err, engine.ErrInvalidStateForExecution)
	})

	t.Run("signs and broadcasts", func(t *testing.T) {
		var signedPayload *interfaces.TransferPayload
		m.broadcaster.EXPECT().Sign(gomock.Any(), gomock.Any(), "hunter2").
			DoAndReturn(func(_ context.Context, p *interfaces.TransferPayload, _ string) (*interfaces.SignedPayload, error) {
				signedPayload = p
				return &interfaces.SignedPayload{Raw: []byte{0x01}}, nil
			})
		m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
			Return("0xdeadbeef", nil)

		valid := pendingTx.WithValidation(transaction.Valid)
		result, err := e.Execute(context.Background(), valid, "hunter2")
		require.NoError(t, err)

		assert.True(t, result.IsHashed())
		assert.Equal(t, "0xdeadbeef", result.TxHash)
		assert.EqualValues(t, 500, minorOf(t, result.Amount))

		require.NotNil(t, signedPayload)
		assert.Equal(t, "1SourceAddr", signedPayload.From)
		assert.Equal(t, "1TargetAddr", signedPayload.To)
		assert.Nil(t, signedPayload.Data)
	})

	t.Run("broadcast failure wraps execution error", func(t *testing.T) {
		m.broadcaster.EXPECT().Sign(gomock.Any(), gomock.Any(), "").
			Return(&interfaces.SignedPayload{Raw: []byte{0x01}}, nil)
		m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
			Return("", errors.New("mempool rejected"))

		valid := pendingTx.WithValidation(transaction.Valid)
		_, err := e.Execute(context.Background(), valid, "")
		require.ErrorIs(t, err, engine.ErrExecutionFailed)
	})
}

func TestNativeCoinEngine_PostExecuteCompletes(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1SourceAddr", "My Bitcoin Wallet")
	target := testAccount(money.BTC, interfaces.AccountTypePrivateKey, "1TargetAddr", "")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.BTC, money.BTC).
		Return(btcQuotes(0, 200, 500), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.BTC, false).
		Return(balanceOf(100_000, money.BTC), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.BTC, money.BTC, source.Type, target.Type, interfaces.TierSilver).
		Return(btcLimits(10, 10_000_000), nil)

	e := engine.NewNativeCoinEngine(source, target, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)

	result := transaction.HashedResult("0xdeadbeef", money.FromMinorUnits(500, money.BTC))
	settlement, err := e.PostExecute(context.Background(), pendingTx, result)
	require.NoError(t, err)
	assert.Equal(t, engine.SettlementComplete, settlement.State)
	assert.Empty(t, e.InvalidatesCaches())
}

func usdtQuotes(mediumWei int64) *interfaces.FeeQuotes {
	return &interfaces.FeeQuotes{
		Currency: money.ETH,
		Medium:   big.NewInt(mediumWei),
		High:     big.NewInt(mediumWei * 2),
	}
}

func TestTokenEngine_DefaultLevelPolicy(t *testing.T) {
	saved := transaction.FeePriority

	tests := []struct {
		name       string
		savedLevel *transaction.FeeLevel
		quotes     *interfaces.FeeQuotes
		want       transaction.FeeLevel
		wantLevels []transaction.FeeLevel
	}{
		{
			name:       "saved preference honoured",
			savedLevel: &saved,
			quotes:     usdtQuotes(100),
			want:       transaction.FeePriority,
			wantLevels: []transaction.FeeLevel{transaction.FeeRegular, transaction.FeePriority},
		},
		{
			name:       "no preference defaults to regular",
			savedLevel: nil,
			quotes:     usdtQuotes(100),
			want:       transaction.FeeRegular,
			wantLevels: []transaction.FeeLevel{transaction.FeeRegular, transaction.FeePriority},
		},
		{
			name:       "unquoted regular falls back to first priced level",
			savedLevel: nil,
			quotes:     &interfaces.FeeQuotes{Currency: money.ETH, High: big.NewInt(200)},
			want:       transaction.FeePriority,
			wantLevels: []transaction.FeeLevel{transaction.FeePriority},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, deps := newEngineMocks(t)
			source := testAccount(money.USDT, interfaces.AccountTypePrivateKey, "0xsource", "Tether Wallet")
			target := testAccount(money.USDT, interfaces.AccountTypePrivateKey, "0xtarget", "")
			feeAccount := testAccount(money.ETH, interfaces.AccountTypePrivateKey, "0xsource", "Ether Wallet")

			m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.USDT, money.ETH).
				Return(tt.quotes, nil)
			m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.USDT, false).
				Return(balanceOf(2_500, money.USDT), nil)
			m.limits.EXPECT().Limits(gomock.Any(), money.USDT, money.USDT, source.Type, target.Type, interfaces.TierSilver).
				Return(&transaction.Limits{
					Min: money.FromMinorUnits(1, money.USDT),
					Max: money.FromMinorUnits(1_000_000, money.USDT),
				}, nil)

			e := engine.NewTokenEngine(source, target, money.ETH, feeAccount, "0xcontract", tt.savedLevel, deps)
			pendingTx, err := e.Initialise(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.want, pendingTx.FeeSelection.SelectedLevel)
			// Tokens never offer a custom fee.
			assert.Equal(t, tt.wantLevels, pendingTx.FeeSelection.AvailableLevels)
			assert.Equal(t, money.ETH, pendingTx.FeeSelection.FeeCurrency)
			// The fee lives in another currency, so the full token balance
			// stays spendable.
			assert.EqualValues(t, 2_500, minorOf(t, pendingTx.AvailableBalance))
		})
	}
}

func TestTokenEngine_InsufficientGas(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.USDT, interfaces.AccountTypePrivateKey, "0xsource", "Tether Wallet")
	target := testAccount(money.USDT, interfaces.AccountTypePrivateKey, "0xtarget", "")
	feeAccount := testAccount(money.ETH, interfaces.AccountTypePrivateKey, "0xsource", "Ether Wallet")

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.USDT, money.ETH).
		Return(usdtQuotes(100), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.USDT, gomock.Any()).
		Return(balanceOf(2_500, money.USDT), nil).AnyTimes()
	// No ether to pay gas with.
	m.balances.EXPECT().Balance(gomock.Any(), feeAccount.ID, money.ETH, false).
		Return(balanceOf(0, money.ETH), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.USDT, money.USDT, source.Type, target.Type, interfaces.TierSilver).
		Return(&transaction.Limits{
			Min: money.FromMinorUnits(1, money.USDT),
			Max: money.FromMinorUnits(1_000_000, money.USDT),
		}, nil)
	m.validator.EXPECT().Validate(gomock.Any(), money.USDT, target.Address).
		Return(&interfaces.AddressStatus{Valid: true}, nil)

	e := engine.NewTokenEngine(source, target, money.ETH, feeAccount, "0xcontract", nil, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)
	pendingTx, err = e.UpdateAmount(context.Background(), money.FromMinorUnits(1_000, money.USDT), pendingTx)
	require.NoError(t, err)

	validated, err := e.ValidateAll(context.Background(), pendingTx)
	require.NoError(t, err)
	assert.Equal(t, transaction.InsufficientGas, validated.Validation)
}

func TestTokenEngine_ExecuteBuildsContractCall(t *testing.T) {
	m, deps := newEngineMocks(t)
	source := testAccount(money.USDT, interfaces.AccountTypePrivateKey, "0xsource", "Tether Wallet")
	target := testAccount(money.USDT, interfaces.AccountTypePrivateKey, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "")
	feeAccount := testAccount(money.ETH, interfaces.AccountTypePrivateKey, "0xsource", "Ether Wallet")
	contract := "0xdAC17F958D2ee523a2206206994597C13D831ec7"

	m.quotes.EXPECT().FeeQuotes(gomock.Any(), money.USDT, money.ETH).
		Return(usdtQuotes(100), nil)
	m.balances.EXPECT().Balance(gomock.Any(), source.ID, money.USDT, false).
		Return(balanceOf(2_500, money.USDT), nil)
	m.limits.EXPECT().Limits(gomock.Any(), money.USDT, money.USDT, source.Type, target.Type, interfaces.TierSilver).
		Return(&transaction.Limits{
			Min: money.FromMinorUnits(1, money.USDT),
			Max: money.FromMinorUnits(1_000_000, money.USDT),
		}, nil)

	var signedPayload *interfaces.TransferPayload
	m.broadcaster.EXPECT().Sign(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p *interfaces.TransferPayload, _ string) (*interfaces.SignedPayload, error) {
			signedPayload = p
			return &interfaces.SignedPayload{Raw: []byte{0x01}}, nil
		})
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
		Return("0xtokenhash", nil)

	e := engine.NewTokenEngine(source, target, money.ETH, feeAccount, contract, nil, deps)
	pendingTx, err := e.Initialise(context.Background())
	require.NoError(t, err)
	pendingTx, err = e.UpdateAmount(context.Background(), money.FromMinorUnits(1_000, money.USDT), pendingTx)
	require.NoError(t, err)

	result, err := e.Execute(context.Background(), pendingTx.WithValidation(transaction.Valid), "")
	require.NoError(t, err)
	assert.Equal(t, "0xtokenhash", result.TxHash)

	require.NotNil(t, signedPayload)
	// The on-chain recipient is the token contract; the real recipient
	// rides in the transfer(address,uint256) call data.
	assert.Equal(t, contract, signedPayload.To)
	require.GreaterOrEqual(t, len(signedPayload.Data), 4)
	assert.Equal(t, "a9059cbb", hex.EncodeToString(signedPayload.Data[:4]))
	assert.Len(t, signedPayload.Data, 4+32+32)
}
