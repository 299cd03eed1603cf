package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/transaction"
)

// Coordinator runs the execute/settle tail of a flow and performs the
// cache invalidations each engine declares. Engines never reach into
// shared state themselves; this is the single place cross-engine
// dirty-flagging happens.
type Coordinator struct {
	invalidator interfaces.BalanceCacheInvalidator
	logger      *zap.Logger
}

// NewCoordinator creates a coordinator over the given invalidator.
func NewCoordinator(invalidator interfaces.BalanceCacheInvalidator, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{invalidator: invalidator, logger: log}
}

// ExecuteAndSettle validates nothing: the caller must have re-run
// ValidateAll immediately beforehand. On success it invalidates the
// caches the engine declares; invalidation failures are logged, not
// propagated, because the flag is advisory.
func (c *Coordinator) ExecuteAndSettle(ctx context.Context, e Engine, pendingTx transaction.PendingTx, secondPassword string) (transaction.Result, Settlement, error) {
	result, err := e.Execute(ctx, pendingTx, secondPassword)
	if err != nil {
		return transaction.Result{}, Settlement{}, err
	}

	settlement, err := e.PostExecute(ctx, pendingTx, result)
	if err != nil {
		return result, Settlement{}, err
	}

	if tags := e.InvalidatesCaches(); len(tags) > 0 && c.invalidator != nil {
		if err := c.invalidator.Invalidate(ctx, tags...); err != nil {
			c.logger.Warn("Failed to invalidate balance caches",
				zap.Any("tags", tags),
				zap.Error(err))
		}
	}

	return result, settlement, nil
}
