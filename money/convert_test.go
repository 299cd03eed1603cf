package money_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frikke/txengine/money"
)

type stubRateSource struct {
	price decimal.Decimal
	err   error
	calls int
}

func (s *stubRateSource) Rate(_ context.Context, from, to money.Currency) (money.Rate, error) {
	s.calls++
	if s.err != nil {
		return money.Rate{}, s.err
	}
	return money.Rate{From: from, To: to, Price: s.price}, nil
}

func TestConverter_Convert(t *testing.T) {
	source := &stubRateSource{price: decimal.NewFromInt(50000)} // 1 BTC = 50,000 USD
	converter := money.NewConverter(source, time.Minute, zap.NewNop())

	// 0.5 BTC -> 25,000.00 USD
	out, err := converter.Convert(context.Background(), money.FromMinorUnits(50000000, money.BTC), money.USD)
	require.NoError(t, err)
	assert.Equal(t, money.USD, out.Currency())
	assert.Equal(t, big.NewInt(2500000), out.MinorUnits())
}

func TestConverter_SameCurrencyIsIdentity(t *testing.T) {
	source := &stubRateSource{price: decimal.NewFromInt(2)}
	converter := money.NewConverter(source, time.Minute, zap.NewNop())

	in := money.FromMinorUnits(123, money.USD)
	out, err := converter.Convert(context.Background(), in, money.USD)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Zero(t, source.calls)
}

func TestConverter_CachesRates(t *testing.T) {
	source := &stubRateSource{price: decimal.NewFromInt(3000)}
	converter := money.NewConverter(source, time.Minute, zap.NewNop())
	ctx := context.Background()

	in := money.New(big.NewInt(1e18), money.ETH)
	_, err := converter.Convert(ctx, in, money.USD)
	require.NoError(t, err)
	_, err = converter.Convert(ctx, in, money.USD)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestConverter_FallsBackToStaleRate(t *testing.T) {
	source := &stubRateSource{price: decimal.NewFromInt(100)}
	converter := money.NewConverter(source, -time.Second, zap.NewNop()) // already expired
	ctx := context.Background()

	in := money.FromMinorUnits(10000000, money.XLM) // 1 XLM
	first, err := converter.Convert(ctx, in, money.USD)
	require.NoError(t, err)

	source.err = errors.New("rate service down")
	second, err := converter.Convert(ctx, in, money.USD)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConverter_ErrorWithNoCache(t *testing.T) {
	source := &stubRateSource{err: errors.New("rate service down")}
	converter := money.NewConverter(source, time.Minute, zap.NewNop())

	_, err := converter.Convert(context.Background(), money.FromMinorUnits(1, money.BTC), money.USD)
	assert.Error(t, err)
}
