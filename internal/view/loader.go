package view

import (
	"context"
	"errors"
	"sync"

	"github.com/bilgisen/atlas/internal/cms"
)

// Status is where a page load stands.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failed
	NotFound
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "error"
	case NotFound:
		return "notFound"
	}
	return "unknown"
}

// Snapshot is a consistent copy of a Loader's state.
type Snapshot[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Loading reports whether a load is in flight.
func (s Snapshot[T]) Loading() bool { return s.Status == Loading }

// Loader tracks one page's data load. Every Begin issues a new sequence
// number and only the newest one may publish its outcome, so a slow response
// for an old request can never overwrite a newer one.
type Loader[T any] struct {
	mu      sync.Mutex
	seq     uint64
	state   Snapshot[T]
	onShift func(from, to Status)
}

func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{}
}

// OnTransition registers fn to be called on every status change.
func (l *Loader[T]) OnTransition(fn func(from, to Status)) {
	l.mu.Lock()
	l.onShift = fn
	l.mu.Unlock()
}

// Begin starts a load and returns its sequence number.
func (l *Loader[T]) Begin() uint64 {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	from := l.state.Status
	l.state.Status = Loading
	l.state.Err = nil
	fn := l.onShift
	l.mu.Unlock()

	if fn != nil && from != Loading {
		fn(from, Loading)
	}
	return seq
}

// Resolve publishes the outcome of load seq. It returns false, leaving the
// state untouched, when seq is stale or already resolved.
func (l *Loader[T]) Resolve(seq uint64, v T, err error) bool {
	l.mu.Lock()
	if seq != l.seq || l.state.Status != Loading {
		l.mu.Unlock()
		return false
	}
	to := classify(err)
	l.state.Status = to
	l.state.Err = err
	if err == nil {
		l.state.Value = v
	}
	fn := l.onShift
	l.mu.Unlock()

	if fn != nil {
		fn(Loading, to)
	}
	return true
}

// Snapshot returns the current state.
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Run is Begin, fetch, Resolve. The returned snapshot is the loader's state
// afterwards, which belongs to a newer load if this one went stale.
func (l *Loader[T]) Run(ctx context.Context, fetch func(context.Context) (T, error)) Snapshot[T] {
	seq := l.Begin()
	v, err := fetch(ctx)
	l.Resolve(seq, v, err)
	return l.Snapshot()
}

func classify(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, cms.ErrNotFound):
		return NotFound
	default:
		return Failed
	}
}
