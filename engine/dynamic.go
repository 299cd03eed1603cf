package engine

import (
	"context"
	"fmt"

	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

// NewDynamicChainEngine builds the engine for dynamically-listed
// self-custody assets, where chain parameters are only known at
// runtime. The fee level policy is first-available fallback (no saved
// preference), and memo support follows the destination's flag.
func NewDynamicChainEngine(source, target Account, hostChain money.Currency, feeAccount Account, deps Dependencies) Engine {
	deps = deps.withDefaults()
	strategy := &dynamicChainStrategy{
		onChainStrategy: &onChainStrategy{
			source:          source,
			target:          target,
			feeAccount:      feeAccount,
			feeCurrency:     hostChain,
			hostChain:       hostChain,
			displayCurrency: deps.DisplayCurrency,
			balances:        deps.Balances,
			quotes:          deps.Quotes,
			validator:       deps.Validator,
			broadcaster:     deps.Broadcaster,
			converter:       deps.Converter,
			logger:          deps.Logger,
		},
	}
	return newBaseEngine(source, target, ActionSend, strategy, deps)
}

// dynamicChainStrategy shares the on-chain lifecycle but differs in
// default-level policy and memo seeding.
type dynamicChainStrategy struct {
	*onChainStrategy
}

// FeeSelection maps quotes the same way as the static on-chain family
// but defaults to the first available level rather than consulting a
// saved preference. This is family policy, not an accident.
func (s *dynamicChainStrategy) FeeSelection(ctx context.Context) (transaction.FeeSelection, error) {
	selection, err := s.onChainStrategy.FeeSelection(ctx)
	if err != nil {
		return transaction.FeeSelection{}, err
	}
	selection.SelectedLevel = selection.AvailableLevels[0]
	return selection, nil
}

// Extras asks the validator whether the destination demands a memo and
// seeds the snapshot accordingly.
func (s *dynamicChainStrategy) Extras(ctx context.Context) (transaction.EngineExtras, error) {
	status, err := s.validator.Validate(ctx, s.source.Currency, s.target.Address)
	if err != nil {
		return transaction.EngineExtras{}, fmt.Errorf("failed to inspect destination for memo requirement: %w", err)
	}
	if !status.RequiresMemo {
		return transaction.EngineExtras{}, nil
	}
	return transaction.EngineExtras{
		Memo: &transaction.Memo{Kind: transaction.MemoText, Required: true},
	}, nil
}
