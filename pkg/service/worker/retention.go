package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
	"github.com/secmon-lab/ticklist/pkg/utils/logging"
)

// RetentionWorker periodically prunes change-log records older than the
// configured retention period.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type RetentionWorker struct {
	repo      interfaces.Repository
	retention time.Duration
	interval  time.Duration
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewRetentionWorker creates a new worker pruning records older than retention
func NewRetentionWorker(repo interfaces.Repository, retention, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{
		repo:      repo,
		retention: retention,
		interval:  interval,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background prune loop. It does not block server startup.
func (w *RetentionWorker) Start(ctx context.Context) error {
	if w.retention <= 0 {
		return goerr.New("retention must be positive", goerr.V("retention", w.retention))
	}

	logging.Default().Info("change-log retention worker starting",
		"retention", w.retention.String(),
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *RetentionWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("change-log retention worker stopped")
}

func (w *RetentionWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.prune(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("change-log prune failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("change-log retention worker context cancelled")
			return
		}
	}
}

func (w *RetentionWorker) prune(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-w.retention)

	deleted, err := w.repo.ChangeLog().Prune(ctx, cutoff)
	if err != nil {
		return goerr.Wrap(err, "failed to prune change log", goerr.V("cutoff", cutoff))
	}

	if deleted > 0 {
		logging.Default().Info("pruned change-log records",
			"deleted", deleted,
			"cutoff", cutoff.Format(time.RFC3339))
	}
	return nil
}
