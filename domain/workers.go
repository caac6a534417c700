package domain

import "context"

// LikeReconcileWorker periodically repairs like counts that drifted from the like relation.
type LikeReconcileWorker interface {
	Start(ctx context.Context)

	// RunOnce performs a single reconciliation pass.
	RunOnce(ctx context.Context) (repaired int64, err error)
}
