package transaction

// ValidationState is the tagged outcome of validating a PendingTx.
// Failures are recorded here, never raised as Go errors; every failure
// kind maps to a distinct, actionable user message.
type ValidationState int

const (
	// Uninitialised is the state of a freshly created snapshot.
	Uninitialised ValidationState = iota
	// Valid means the snapshot passed every applicable check.
	Valid
	// InvalidAmount: the amount is zero, negative or malformed.
	InvalidAmount
	// InvalidAddress: the destination failed syntactic or on-chain checks.
	InvalidAddress
	// InsufficientFunds: the amount exceeds the withdrawable balance.
	InsufficientFunds
	// InsufficientGas: the fee-bearing currency balance cannot cover the
	// fee. Distinct from InsufficientFunds because the fee may be
	// charged in a different currency than the principal.
	InsufficientGas
	// HasTxInFlight: an outstanding transaction conflicts with this one.
	HasTxInFlight
	// OptionInvalid: a memo or description option is missing or malformed.
	OptionInvalid
	// UnderMinLimit: the amount is below the minimum transfer limit.
	UnderMinLimit
	// AbovePaymentMethodLimit: the amount exceeds the payment-method cap.
	AbovePaymentMethodLimit
	// OverSilverTierLimit: the amount exceeds the silver-tier maximum.
	OverSilverTierLimit
	// OverGoldTierLimit: the amount exceeds the gold-tier maximum.
	OverGoldTierLimit
)

var validationStateNames = map[ValidationState]string{
	Uninitialised:           "UNINITIALISED",
	Valid:                   "VALID",
	InvalidAmount:           "INVALID_AMOUNT",
	InvalidAddress:          "INVALID_ADDRESS",
	InsufficientFunds:       "INSUFFICIENT_FUNDS",
	InsufficientGas:         "INSUFFICIENT_GAS",
	HasTxInFlight:           "HAS_TX_IN_FLIGHT",
	OptionInvalid:           "OPTION_INVALID",
	UnderMinLimit:           "UNDER_MIN_LIMIT",
	AbovePaymentMethodLimit: "ABOVE_PAYMENT_METHOD_LIMIT",
	OverSilverTierLimit:     "OVER_SILVER_TIER_LIMIT",
	OverGoldTierLimit:       "OVER_GOLD_TIER_LIMIT",
}

var validationStateMessages = map[ValidationState]string{
	Uninitialised:           "Enter an amount to continue",
	Valid:                   "",
	InvalidAmount:           "Enter an amount above zero",
	InvalidAddress:          "The destination address is not valid for this asset",
	InsufficientFunds:       "You don't have enough funds to send this amount",
	InsufficientGas:         "You don't have enough of the network's native currency to pay the fee",
	HasTxInFlight:           "Wait for your pending transaction to finish before starting another",
	OptionInvalid:           "Check the memo or description on this transaction",
	UnderMinLimit:           "The amount is below the minimum for this transfer",
	AbovePaymentMethodLimit: "The amount exceeds the limit for this payment method",
	OverSilverTierLimit:     "Upgrade your profile to send larger amounts",
	OverGoldTierLimit:       "The amount exceeds your annual transfer limit",
}

func (s ValidationState) String() string {
	if name, ok := validationStateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Message returns the user-facing description of the state.
func (s ValidationState) Message() string {
	return validationStateMessages[s]
}

// IsValid reports whether the snapshot may proceed to execution.
func (s ValidationState) IsValid() bool {
	return s == Valid
}

// IsFailure reports whether the state is a concrete validation failure.
func (s ValidationState) IsFailure() bool {
	return s != Valid && s != Uninitialised
}
