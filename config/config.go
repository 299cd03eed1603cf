package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Defaults applied when the environment does not override a value.
const (
	DefaultSettlementPollInterval    = 5 * time.Second
	DefaultSettlementPollMaxAttempts = 60
	DefaultRateCacheTTL              = 5 * time.Minute
	DefaultWithdrawalLockDays        = 3
)

// Config holds engine tunables sourced from the environment.
type Config struct {
	// SettlementPollInterval is the fixed interval between settlement
	// status fetches after a fiat transfer has been submitted.
	SettlementPollInterval time.Duration
	// SettlementPollMaxAttempts bounds the fiat engines' polling; zero
	// means unbounded.
	SettlementPollMaxAttempts uint64
	// RateCacheTTL controls how long a display exchange rate is reused.
	RateCacheTTL time.Duration
	// WithdrawalLockDays is the holding period applied to fiat
	// withdrawals before funds leave the custodial account.
	WithdrawalLockDays uint32
	// ApprovalCallbackURL is where the bank partner redirects the user
	// after an out-of-band authorisation step.
	ApprovalCallbackURL string
}

// Load reads configuration from the environment. A .env file is honoured
// when present for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env file")
	}

	cfg := &Config{
		SettlementPollInterval:    DefaultSettlementPollInterval,
		SettlementPollMaxAttempts: DefaultSettlementPollMaxAttempts,
		RateCacheTTL:              DefaultRateCacheTTL,
		WithdrawalLockDays:        DefaultWithdrawalLockDays,
	}

	if v := os.Getenv("SETTLEMENT_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing SETTLEMENT_POLL_INTERVAL %q", v)
		}
		cfg.SettlementPollInterval = d
	}
	if v := os.Getenv("SETTLEMENT_POLL_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing SETTLEMENT_POLL_MAX_ATTEMPTS %q", v)
		}
		cfg.SettlementPollMaxAttempts = n
	}
	if v := os.Getenv("RATE_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing RATE_CACHE_TTL %q", v)
		}
		cfg.RateCacheTTL = d
	}
	if v := os.Getenv("WITHDRAWAL_LOCK_DAYS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing WITHDRAWAL_LOCK_DAYS %q", v)
		}
		cfg.WithdrawalLockDays = uint32(n)
	}
	cfg.ApprovalCallbackURL = os.Getenv("APPROVAL_CALLBACK_URL")

	return cfg, nil
}

// Default returns the built-in configuration without touching the
// environment. Used by tests and as a fallback for embedders.
func Default() *Config {
	return &Config{
		SettlementPollInterval:    DefaultSettlementPollInterval,
		SettlementPollMaxAttempts: DefaultSettlementPollMaxAttempts,
		RateCacheTTL:              DefaultRateCacheTTL,
		WithdrawalLockDays:        DefaultWithdrawalLockDays,
	}
}
