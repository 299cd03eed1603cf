package engine

import (
	"go.uber.org/zap"

	"github.com/frikke/txengine/config"
	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/logger"
	"github.com/frikke/txengine/money"
)

// Dependencies bundles the external collaborators an engine is wired
// with at construction. Engines treat every field as immutable.
type Dependencies struct {
	Balances    interfaces.BalanceProvider
	Quotes      interfaces.FeeQuoteProvider
	Limits      interfaces.LimitsService
	History     interfaces.TxHistoryProvider
	Validator   interfaces.AddressValidator
	Broadcaster interfaces.Broadcaster
	Bank        interfaces.BankTransferService
	Converter   interfaces.RateConverter
	Config      *config.Config
	Tier        interfaces.Tier
	// DisplayCurrency is the fiat currency used for display equivalents
	// in confirmations. Defaults to USD.
	DisplayCurrency money.Currency
	Logger          *zap.Logger
}

func (d Dependencies) withDefaults() Dependencies {
	out := d
	if out.Config == nil {
		out.Config = config.Default()
	}
	if out.DisplayCurrency == "" {
		out.DisplayCurrency = money.USD
	}
	if out.Logger == nil {
		// Fall back to the process logger when it has been initialised,
		// a nop logger otherwise.
		if logger.Log != nil {
			out.Logger = logger.Log
		} else {
			out.Logger = zap.NewNop()
		}
	}
	return out
}
