package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

// finalPassTimeout bounds the last pass run after shutdown is requested
const finalPassTimeout = 5 * time.Second

type reconcileLikesWorker struct {
	CommentRepo domain.CommentRepository
	ThreadCache domain.ThreadCache
	interval    time.Duration
	done        chan struct{}
}

var _ domain.LikeReconcileWorker = (*reconcileLikesWorker)(nil)

func NewReconcileLikesWorker(cr domain.CommentRepository, tc domain.ThreadCache, interval time.Duration) *reconcileLikesWorker {
	return &reconcileLikesWorker{
		CommentRepo: cr,
		ThreadCache: tc,
		interval:    interval,
		done:        make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled, repairing like counts every interval.
func (w *reconcileLikesWorker) Start(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down ReconcileLikesWorker, running last pass...")
			finalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalPassTimeout)
			w.run(finalCtx)
			cancel()
			return
		}
	}
}

// Done is closed once Start has returned.
func (w *reconcileLikesWorker) Done() <-chan struct{} {
	return w.done
}

// RunOnce repairs drifted counters and drops the cached views that still
// show the old likeCount.
func (w *reconcileLikesWorker) RunOnce(ctx context.Context) (int64, error) {
	repaired, threadIDs, err := w.CommentRepo.ReconcileLikeCounts(ctx)
	if err != nil {
		return 0, err
	}
	for _, id := range threadIDs {
		if err := w.ThreadCache.InvalidateThread(ctx, id); err != nil {
			logrus.Warnf("failed to invalidate thread view %s after reconcile: %v", id, err)
		}
	}
	return repaired, nil
}

func (w *reconcileLikesWorker) run(ctx context.Context) {
	repaired, err := w.RunOnce(ctx)
	if err != nil {
		logrus.Errorf("failed to reconcile like counts: %v", err)
		return
	}
	if repaired > 0 {
		logrus.Warnf("repaired like count of %d comments", repaired)
	}
}
