package engine_test

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/frikke/txengine/config"
	"github.com/frikke/txengine/engine"
	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/mocks"
	"github.com/frikke/txengine/money"
)

type engineMocks struct {
	balances    *mocks.MockBalanceProvider
	quotes      *mocks.MockFeeQuoteProvider
	limits      *mocks.MockLimitsService
	history     *mocks.MockTxHistoryProvider
	validator   *mocks.MockAddressValidator
	broadcaster *mocks.MockBroadcaster
	bank        *mocks.MockBankTransferService
	converter   *mocks.MockRateConverter
	invalidator *mocks.MockBalanceCacheInvalidator
}

func newEngineMocks(t *testing.T) (*engineMocks, engine.Dependencies) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &engineMocks{
		balances:    mocks.NewMockBalanceProvider(ctrl),
		quotes:      mocks.NewMockFeeQuoteProvider(ctrl),
		limits:      mocks.NewMockLimitsService(ctrl),
		history:     mocks.NewMockTxHistoryProvider(ctrl),
		validator:   mocks.NewMockAddressValidator(ctrl),
		broadcaster: mocks.NewMockBroadcaster(ctrl),
		bank:        mocks.NewMockBankTransferService(ctrl),
		converter:   mocks.NewMockRateConverter(ctrl),
		invalidator: mocks.NewMockBalanceCacheInvalidator(ctrl),
	}

	deps := engine.Dependencies{
		Balances:        m.balances,
		Quotes:          m.quotes,
		Limits:          m.limits,
		History:         m.history,
		Validator:       m.validator,
		Broadcaster:     m.broadcaster,
		Bank:            m.bank,
		Converter:       m.converter,
		Config:          config.Default(),
		Tier:            interfaces.TierSilver,
		DisplayCurrency: money.USD,
		Logger:          zap.NewNop(),
	}
	return m, deps
}

func testAccount(currency money.Currency, accountType interfaces.AccountType, address, label string) engine.Account {
	return engine.Account{
		ID:       uuid.New(),
		Currency: currency,
		Type:     accountType,
		Address:  address,
		Label:    label,
	}
}

func balanceOf(minor int64, currency money.Currency) *interfaces.AccountBalance {
	return &interfaces.AccountBalance{
		Total:        money.FromMinorUnits(minor, currency),
		Withdrawable: money.FromMinorUnits(minor, currency),
		Pending:      money.Zero(currency),
	}
}
