package transaction

import (
	"github.com/frikke/txengine/money"
)

// FeeLevel is a named fee urgency tier. Each asset family maps the
// levels it supports to concrete quotes in the fee-bearing currency.
type FeeLevel int

const (
	// FeeNone resolves to a zero fee and is only offered where the asset
	// family supports fee-less transfers (fiat rails).
	FeeNone FeeLevel = iota
	// FeeRegular targets ordinary confirmation time.
	FeeRegular
	// FeePriority targets next-block confirmation.
	FeePriority
	// FeeCustom lets the caller supply an absolute fee amount.
	FeeCustom
)

var feeLevelNames = map[FeeLevel]string{
	FeeNone:     "None",
	FeeRegular:  "Regular",
	FeePriority: "Priority",
	FeeCustom:   "Custom",
}

func (l FeeLevel) String() string {
	if name, ok := feeLevelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// FeeSelection carries the selected fee level together with the levels
// the asset supports and their priced amounts. The fee currency may
// differ from the transfer currency (token sends are priced in the host
// chain's native coin).
type FeeSelection struct {
	SelectedLevel   FeeLevel
	AvailableLevels []FeeLevel
	FeesForLevels   map[FeeLevel]money.Money
	FeeCurrency     money.Currency
	// CustomAmount holds the caller-supplied fee when SelectedLevel is
	// FeeCustom.
	CustomAmount *money.Money
}

// Contains reports whether the level is available for this asset.
func (s FeeSelection) Contains(level FeeLevel) bool {
	for _, l := range s.AvailableLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Fee returns the priced amount for the given level. FeeNone always
// resolves to zero; FeeCustom resolves to the caller-supplied amount.
func (s FeeSelection) Fee(level FeeLevel) (money.Money, bool) {
	switch level {
	case FeeNone:
		return money.Zero(s.FeeCurrency), true
	case FeeCustom:
		if s.CustomAmount == nil {
			return money.Money{}, false
		}
		return *s.CustomAmount, true
	default:
		fee, ok := s.FeesForLevels[level]
		return fee, ok
	}
}

// SelectedFee returns the priced amount for the selected level.
func (s FeeSelection) SelectedFee() (money.Money, bool) {
	return s.Fee(s.SelectedLevel)
}

func (s FeeSelection) clone() FeeSelection {
	out := s
	out.AvailableLevels = append([]FeeLevel(nil), s.AvailableLevels...)
	if s.FeesForLevels != nil {
		out.FeesForLevels = make(map[FeeLevel]money.Money, len(s.FeesForLevels))
		for l, fee := range s.FeesForLevels {
			out.FeesForLevels[l] = fee
		}
	}
	if s.CustomAmount != nil {
		amount := *s.CustomAmount
		out.CustomAmount = &amount
	}
	return out
}
