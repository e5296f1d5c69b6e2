package notify

import (
	"context"
	"sync"
	"time"

	"restofresh-web/internal/logger"

	"go.uber.org/zap"
)

// Watcher substitutes for a push channel: it re-fetches a collection on an
// interval, diffs it by id against the previous snapshot, and hands anything
// new to onNew. The diff and emission logic knows nothing about transports,
// so the fetch can later be swapped for a real subscription.
//
// The first successful fetch only seeds the baseline; nothing is emitted
// until a non-empty baseline exists, so a freshly opened dashboard is not
// flooded with notifications for historical records.
type Watcher[T any] struct {
	name     string
	interval time.Duration
	fetch    func(ctx context.Context) ([]T, error)
	id       func(T) string
	onNew    func(T)

	mu       sync.Mutex
	baseline map[string]struct{}
	items    []T
	lastErr  error
}

func NewWatcher[T any](
	name string,
	interval time.Duration,
	fetch func(ctx context.Context) ([]T, error),
	id func(T) string,
	onNew func(T),
) *Watcher[T] {
	return &Watcher[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
		id:       id,
		onNew:    onNew,
	}
}

// Run polls until ctx is cancelled: once immediately, then on every tick.
// Fetch failures are recorded and skipped over; they never stop the loop.
func (w *Watcher[T]) Run(ctx context.Context) {
	log := logger.L().With(zap.String("watcher", w.name))
	log.Info("watcher started", zap.Duration("interval", w.interval))

	w.poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher[T]) poll(ctx context.Context) {
	fetched, err := w.fetch(ctx)

	// A fetch that resolves after teardown must not emit or touch the
	// snapshot.
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		logger.L().Warn("watcher fetch failed",
			zap.String("watcher", w.name),
			zap.Error(err),
		)
		w.mu.Lock()
		w.lastErr = err
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	prev := w.baseline

	next := make(map[string]struct{}, len(fetched))
	var fresh []T
	for _, item := range fetched {
		key := w.id(item)
		next[key] = struct{}{}
		if _, seen := prev[key]; !seen {
			fresh = append(fresh, item)
		}
	}

	emit := len(prev) > 0
	w.baseline = next
	w.items = fetched
	w.lastErr = nil
	w.mu.Unlock()

	if !emit {
		return
	}
	for _, item := range fresh {
		w.onNew(item)
	}
}

// Items returns the last successfully fetched collection.
func (w *Watcher[T]) Items() []T {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}

// Err returns the most recent fetch error, nil after a successful fetch.
// It exists for display; the loop itself never stops on errors.
func (w *Watcher[T]) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}
