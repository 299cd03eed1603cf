package money

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Rate is the point-in-time price of one major unit of From expressed in
// major units of To.
type Rate struct {
	From  Currency
	To    Currency
	Price decimal.Decimal
}

// RateSource supplies point-in-time exchange rates.
type RateSource interface {
	Rate(ctx context.Context, from, to Currency) (Rate, error)
}

type cachedRate struct {
	rate      Rate
	expiresAt time.Time
}

// Converter converts Money between currencies for display purposes. It
// caches rates for a short TTL so confirmation rebuilds stay cheap and
// deterministic within a flow. Conversion is never used for settlement
// amounts.
type Converter struct {
	source     RateSource
	logger     *zap.Logger
	cache      map[string]cachedRate
	cacheMutex sync.RWMutex
	cacheTTL   time.Duration
}

// NewConverter creates a converter over the given rate source.
func NewConverter(source RateSource, cacheTTL time.Duration, log *zap.Logger) *Converter {
	return &Converter{
		source:   source,
		logger:   log,
		cache:    make(map[string]cachedRate),
		cacheTTL: cacheTTL,
	}
}

// Convert returns m expressed in the target currency at the current
// rate, rounded half-even to the target's minor unit.
func (c *Converter) Convert(ctx context.Context, m Money, to Currency) (Money, error) {
	if m.Currency() == to {
		return m, nil
	}

	rate, err := c.rate(ctx, m.Currency(), to)
	if err != nil {
		return Money{}, fmt.Errorf("failed to fetch rate %s/%s: %w", m.Currency(), to, err)
	}

	minor := m.ToMajorUnits().
		Mul(rate.Price).
		Shift(to.Scale()).
		RoundBank(0).
		BigInt()
	return New(minor, to), nil
}

func (c *Converter) rate(ctx context.Context, from, to Currency) (Rate, error) {
	key := string(from) + "_" + string(to)

	c.cacheMutex.RLock()
	cached, ok := c.cache[key]
	c.cacheMutex.RUnlock()
	if ok && time.Now().Before(cached.expiresAt) {
		return cached.rate, nil
	}

	rate, err := c.source.Rate(ctx, from, to)
	if err != nil {
		// Fall back to a stale cached rate rather than failing a
		// display-only conversion.
		if ok {
			c.logger.Warn("Rate fetch failed, using stale cached rate",
				zap.String("from", string(from)),
				zap.String("to", string(to)),
				zap.Error(err))
			return cached.rate, nil
		}
		return Rate{}, err
	}

	c.cacheMutex.Lock()
	c.cache[key] = cachedRate{rate: rate, expiresAt: time.Now().Add(c.cacheTTL)}
	c.cacheMutex.Unlock()

	return rate, nil
}
