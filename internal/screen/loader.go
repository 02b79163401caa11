// Package screen holds the fetch state of one view: focus-triggered reloads
// that never overlap, results dropped once the view is gone, and mutations
// that finish before the list is read again.
package screen

import (
	"context"
	"sync"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Observer receives the outcome of each completed fetch.
type Observer[T any] func(data T, err error)

type Loader[T any] struct {
	key    string
	fetch  FetchFunc[T]
	group  singleflight.Group
	logger internal.Logger

	mu       sync.Mutex
	observer Observer[T]
	inFlight int
	started  uint64 // generation of the newest fetch
}

func NewLoader[T any](key string, fetch FetchFunc[T], observer Observer[T], logger internal.Logger) *Loader[T] {
	if logger == nil {
		logger = internal.NopLogger()
	}
	return &Loader[T]{key: key, fetch: fetch, observer: observer, logger: logger}
}

// Load fetches the resource. A call made while a fetch is outstanding joins
// it instead of starting another; all joined callers get the same result and
// the observer hears about it once.
//
// The shared fetch runs detached from the cancellation of whichever caller
// started it, so one caller giving up does not fail the others. Each caller
// still returns ctx.Err() as soon as its own ctx is done.
func (l *Loader[T]) Load(ctx context.Context) (T, error) {
	fetchCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(l.key, func() (interface{}, error) {
		gen := l.begin()
		defer l.end()

		data, err := l.fetch(fetchCtx)
		l.publish(gen, data, err)
		return data, err
	})
	select {
	case res := <-ch:
		if res.Shared {
			l.logger.Debugf("screen %s: joined in-flight fetch", l.key)
		}
		data, _ := res.Val.(T)
		return data, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Mutate runs fn to completion, successful or not, and only then reloads.
// The reload never joins a fetch that started before fn finished, and such a
// fetch no longer reaches the observer. The mutation error wins over a
// reload error.
func (l *Loader[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	mutErr := fn(ctx)
	if mutErr != nil {
		l.logger.Warnf("screen %s: mutation failed: %v", l.key, mutErr)
	}
	l.group.Forget(l.key)
	_, loadErr := l.Load(ctx)
	if mutErr != nil {
		return mutErr
	}
	return loadErr
}

// Detach disconnects the observer. Fetches still running complete, but their
// results go nowhere.
func (l *Loader[T]) Detach() {
	l.mu.Lock()
	l.observer = nil
	l.mu.Unlock()
}

func (l *Loader[T]) Attached() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.observer != nil
}

func (l *Loader[T]) InFlight() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight > 0
}

func (l *Loader[T]) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight++
	l.started++
	return l.started
}

func (l *Loader[T]) end() {
	l.mu.Lock()
	l.inFlight--
	l.mu.Unlock()
}

func (l *Loader[T]) publish(gen uint64, data T, err error) {
	l.mu.Lock()
	obs := l.observer
	stale := gen < l.started
	l.mu.Unlock()
	if obs == nil {
		l.logger.Debugf("screen %s: detached, dropping result", l.key)
		return
	}
	if stale {
		l.logger.Debugf("screen %s: superseded, dropping result", l.key)
		return
	}
	obs(data, err)
}
