package engine

import (
	"context"
	"fmt"
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/money"
	"github.com/frikke/txengine/transaction"
)

// NewNativeCoinEngine builds the engine for a plain on-chain send of a
// chain's native coin. The fee is charged in the transfer currency and
// a caller-supplied custom fee is allowed.
func NewNativeCoinEngine(source, target Account, deps Dependencies) Engine {
	deps = deps.withDefaults()
	strategy := &onChainStrategy{
		source:          source,
		target:          target,
		feeAccount:      source,
		feeCurrency:     source.Currency,
		hostChain:       source.Currency,
		allowCustom:     true,
		displayCurrency: deps.DisplayCurrency,
		balances:        deps.Balances,
		quotes:          deps.Quotes,
		validator:       deps.Validator,
		broadcaster:     deps.Broadcaster,
		converter:       deps.Converter,
		logger:          deps.Logger,
	}
	return newBaseEngine(source, target, ActionSend, strategy, deps)
}

// NewTokenEngine builds the engine for an ERC-20-style token transfer.
// Fees are priced and paid in the host chain's native currency from a
// separate fee account; the default fee level follows the user's saved
// preference when the quote still offers it.
func NewTokenEngine(source, target Account, hostChain money.Currency, feeAccount Account, contractAddress string, savedLevel *transaction.FeeLevel, deps Dependencies) Engine {
	deps = deps.withDefaults()
	strategy := &onChainStrategy{
		source:          source,
		target:          target,
		feeAccount:      feeAccount,
		feeCurrency:     hostChain,
		hostChain:       hostChain,
		contractAddress: contractAddress,
		savedLevel:      savedLevel,
		displayCurrency: deps.DisplayCurrency,
		balances:        deps.Balances,
		quotes:          deps.Quotes,
		validator:       deps.Validator,
		broadcaster:     deps.Broadcaster,
		converter:       deps.Converter,
		logger:          deps.Logger,
	}
	return newBaseEngine(source, target, ActionSend, strategy, deps)
}

func newBaseEngine(source, target Account, action Action, strategy assetStrategy, deps Dependencies) Engine {
	return &baseEngine{
		source:   source,
		target:   target,
		action:   action,
		tier:     deps.Tier,
		balances: deps.Balances,
		limits:   deps.Limits,
		history:  deps.History,
		strategy: strategy,
		logger:   deps.Logger,
	}
}

// onChainStrategy covers both the native coin and token families; the
// two differ only in fee currency, fee account, payload shape and
// default-level policy.
type onChainStrategy struct {
	source          Account
	target          Account
	feeAccount      Account
	feeCurrency     money.Currency
	hostChain       money.Currency
	contractAddress string
	savedLevel      *transaction.FeeLevel
	allowCustom     bool
	displayCurrency money.Currency

	balances    interfaces.BalanceProvider
	quotes      interfaces.FeeQuoteProvider
	validator   interfaces.AddressValidator
	broadcaster interfaces.Broadcaster
	converter   interfaces.RateConverter
	logger      *zap.Logger
}

func (s *onChainStrategy) FeeSelection(ctx context.Context) (transaction.FeeSelection, error) {
	quotes, err := s.quotes.FeeQuotes(ctx, s.source.Currency, s.hostChain)
	if err != nil {
		return transaction.FeeSelection{}, fmt.Errorf("failed to fetch fee quotes for %s: %w", s.source.Currency, err)
	}

	fees := make(map[transaction.FeeLevel]money.Money)
	var available []transaction.FeeLevel
	// A quoted Low level has no user-facing representation and is
	// dropped entirely, never remapped.
	if quotes.Medium != nil {
		fees[transaction.FeeRegular] = money.New(quotes.Medium, quotes.Currency)
		available = append(available, transaction.FeeRegular)
	}
	if quotes.High != nil {
		fees[transaction.FeePriority] = money.New(quotes.High, quotes.Currency)
		available = append(available, transaction.FeePriority)
	}
	if len(available) == 0 {
		return transaction.FeeSelection{}, fmt.Errorf("no usable fee levels quoted for %s", s.source.Currency)
	}
	if s.allowCustom {
		available = append(available, transaction.FeeCustom)
	}

	return transaction.FeeSelection{
		SelectedLevel:   s.defaultLevel(available),
		AvailableLevels: available,
		FeesForLevels:   fees,
		FeeCurrency:     quotes.Currency,
	}, nil
}

// defaultLevel applies the family's default policy: the saved
// preference when the quote still offers it (token engines), else
// Regular when available, else the first priced level. FeeNone is never
// chosen unless it is the only option.
func (s *onChainStrategy) defaultLevel(available []transaction.FeeLevel) transaction.FeeLevel {
	contains := func(level transaction.FeeLevel) bool {
		for _, l := range available {
			if l == level {
				return true
			}
		}
		return false
	}
	if s.savedLevel != nil && contains(*s.savedLevel) {
		return *s.savedLevel
	}
	if contains(transaction.FeeRegular) {
		return transaction.FeeRegular
	}
	for _, l := range available {
		if l != transaction.FeeNone && l != transaction.FeeCustom {
			return l
		}
	}
	return available[0]
}

func (s *onChainStrategy) Extras(ctx context.Context) (transaction.EngineExtras, error) {
	return transaction.EngineExtras{}, nil
}

func (s *onChainStrategy) Confirmations(ctx context.Context, pendingTx transaction.PendingTx) ([]transaction.Confirmation, error) {
	feeFiat, err := s.converter.Convert(ctx, pendingTx.FeeAmount, s.displayCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to convert fee for display: %w", err)
	}

	total := pendingTx.Amount
	if pendingTx.FeeAmount.Currency() == pendingTx.Amount.Currency() {
		total, err = pendingTx.Amount.Add(pendingTx.FeeAmount)
		if err != nil {
			return nil, err
		}
	}
	totalFiat, err := s.converter.Convert(ctx, total, s.displayCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to convert total for display: %w", err)
	}

	confirmations := []transaction.Confirmation{
		transaction.TextConfirmation(transaction.ConfirmationFrom, s.source.Label),
		transaction.TextConfirmation(transaction.ConfirmationTo, s.targetDisplay()),
		transaction.AmountConfirmation(transaction.ConfirmationAmount, pendingTx.Amount),
		transaction.CompoundConfirmation(transaction.ConfirmationCompoundNetworkFee, pendingTx.FeeAmount, feeFiat),
		transaction.CompoundConfirmation(transaction.ConfirmationTotal, total, totalFiat),
	}
	if pendingTx.Extras.Memo != nil {
		confirmations = append(confirmations,
			transaction.TextConfirmation(transaction.ConfirmationMemo, pendingTx.Extras.Memo.Value))
	}
	return confirmations, nil
}

func (s *onChainStrategy) targetDisplay() string {
	if s.target.Label != "" {
		return s.target.Label
	}
	return s.target.Address
}

func (s *onChainStrategy) FeeCurrencyBalance(ctx context.Context) (money.Money, error) {
	balance, err := s.balances.Balance(ctx, s.feeAccount.ID, s.feeCurrency, false)
	if err != nil {
		return money.Money{}, err
	}
	return balance.Withdrawable, nil
}

func (s *onChainStrategy) CheckAddress(ctx context.Context) (transaction.ValidationState, error) {
	status, err := s.validator.Validate(ctx, s.source.Currency, s.target.Address)
	if err != nil {
		return transaction.Uninitialised, fmt.Errorf("failed to validate destination: %w", err)
	}
	if !status.Valid {
		return transaction.InvalidAddress, nil
	}
	return transaction.Valid, nil
}

func (s *onChainStrategy) CheckOptions(pendingTx transaction.PendingTx) transaction.ValidationState {
	return checkMemo(pendingTx.Extras.Memo)
}

func (s *onChainStrategy) Execute(ctx context.Context, pendingTx transaction.PendingTx, secondPassword string) (transaction.Result, error) {
	payload := &interfaces.TransferPayload{
		From:   s.source.Address,
		To:     s.target.Address,
		Amount: pendingTx.Amount,
		Fee:    pendingTx.FeeAmount,
	}
	if s.contractAddress != "" {
		payload.To = s.contractAddress
		payload.Data = erc20TransferData(s.target.Address, pendingTx.Amount.MinorUnits())
	}
	if pendingTx.Extras.Memo != nil {
		payload.Memo = pendingTx.Extras.Memo.Value
	}

	signed, err := s.broadcaster.Sign(ctx, payload, secondPassword)
	if err != nil {
		return transaction.Result{}, fmt.Errorf("%w: signing: %v", ErrExecutionFailed, err)
	}
	hash, err := s.broadcaster.Broadcast(ctx, signed)
	if err != nil {
		// The transfer may or may not have reached the network; this is
		// not safe to retry.
		return transaction.Result{}, fmt.Errorf("%w: broadcasting: %v", ErrExecutionFailed, err)
	}

	s.logger.Info("On-chain transfer broadcast",
		zap.String("asset", string(s.source.Currency)),
		zap.String("tx_hash", hash))
	return transaction.HashedResult(hash, pendingTx.Amount), nil
}

func (s *onChainStrategy) PostExecute(ctx context.Context, pendingTx transaction.PendingTx, result transaction.Result) (Settlement, error) {
	// On-chain settlement is the network's business once broadcast.
	return Settlement{State: SettlementComplete, Amount: result.Amount}, nil
}

func (s *onChainStrategy) InvalidatesCaches() []interfaces.CacheTag {
	return nil
}

var memoIDPattern = regexp.MustCompile(`^[0-9]+$`)

// checkMemo validates a destination memo: required memos must be
// present, text memos are length-bound and id memos must be numeric.
func checkMemo(memo *transaction.Memo) transaction.ValidationState {
	if memo == nil {
		return transaction.Valid
	}
	if memo.Value == "" {
		if memo.Required {
			return transaction.OptionInvalid
		}
		return transaction.Valid
	}
	switch memo.Kind {
	case transaction.MemoText:
		if len(memo.Value) > transaction.MemoTextMaxLength {
			return transaction.OptionInvalid
		}
	case transaction.MemoID:
		if !memoIDPattern.MatchString(memo.Value) {
			return transaction.OptionInvalid
		}
	}
	return transaction.Valid
}

// erc20TransferData encodes a transfer(address,uint256) call.
func erc20TransferData(recipient string, amount *big.Int) []byte {
	selector := crypto.Keccak256([]byte("transfer(address,uint256)"))[:4]
	data := make([]byte, 0, 4+2*32)
	data = append(data, selector...)
	data = append(data, common.LeftPadBytes(common.HexToAddress(recipient).Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}
