package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"confsched/internal/lib/logger/sl"
	"confsched/internal/schedule"
)

// SnapshotSaver persists fetched feed documents. Nil disables
// persistence.
type SnapshotSaver interface {
	SaveSnapshot(document []byte, etag string, fetchedAt time.Time) (string, error)
}

// Refresher fetches the feed, rebuilds the schedule index, and swaps it
// into the store. A failed refresh leaves the previous index serving.
// Refresh cycles are serialized: the cron tick and the reload endpoint
// both call Refresh, and the fetcher's ETag state is not safe to share.
type Refresher struct {
	log       *slog.Logger
	fetcher   *Fetcher
	store     *schedule.Store
	opts      schedule.Options
	snapshots SnapshotSaver

	mu sync.Mutex
}

func NewRefresher(log *slog.Logger, fetcher *Fetcher, store *schedule.Store, opts schedule.Options, snapshots SnapshotSaver) *Refresher {
	return &Refresher{
		log:       log,
		fetcher:   fetcher,
		store:     store,
		opts:      opts,
		snapshots: snapshots,
	}
}

// Refresh runs one fetch-parse-swap cycle. ErrNotModified from the
// fetcher is not an error: the current index stays. saveSnapshot
// controls whether the fetched document is persisted.
func (r *Refresher) Refresh(ctx context.Context, saveSnapshot bool) error {
	const op = "feed.Refresher.Refresh"

	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.log.With(slog.String("op", op))

	document, err := r.fetcher.Fetch(ctx)
	if errors.Is(err, ErrNotModified) {
		log.Debug("feed not modified, keeping current schedule")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	events, err := schedule.ParseDocument(document)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	fetchedAt := time.Now()
	r.store.Swap(schedule.New(events, r.opts), fetchedAt)

	log.Info("schedule refreshed", slog.Int("events", len(events)))

	if saveSnapshot && r.snapshots != nil {
		id, err := r.snapshots.SaveSnapshot(document, r.fetcher.ETag(), fetchedAt)
		if err != nil {
			log.Warn("failed to save schedule snapshot", sl.Err(err))
		} else {
			log.Debug("schedule snapshot saved", slog.String("snapshot_id", id))
		}
	}

	return nil
}

// Restore builds the index from a previously stored document, for
// startup when the feed is unreachable.
func (r *Refresher) Restore(document []byte, fetchedAt time.Time) error {
	const op = "feed.Refresher.Restore"

	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := schedule.ParseDocument(document)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.store.Swap(schedule.New(events, r.opts), fetchedAt)

	r.log.Info("schedule restored from snapshot",
		slog.String("op", op),
		slog.Int("events", len(events)),
		slog.Time("fetched_at", fetchedAt),
	)

	return nil
}
