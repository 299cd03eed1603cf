package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockBalanceProviderForTest creates a new mock BalanceProvider for testing
func NewMockBalanceProviderForTest(t *testing.T) *MockBalanceProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBalanceProvider(ctrl)
}

// NewMockBankTransferServiceForTest creates a new mock BankTransferService for testing
func NewMockBankTransferServiceForTest(t *testing.T) *MockBankTransferService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBankTransferService(ctrl)
}

// NewMockBroadcasterForTest creates a new mock Broadcaster for testing
func NewMockBroadcasterForTest(t *testing.T) *MockBroadcaster {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBroadcaster(ctrl)
}
