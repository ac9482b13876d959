// Package cancel provides the cooperative cancellation used to bound the
// runtime of a minimization.
//
// Long-running loops poll a Signal at bounded intervals and stop with
// ErrTimeout as soon as it is raised. Cancellation is never preemptive: the
// latency is bounded by the cost of the work done between two polls.
package cancel

import (
	"context"
	"errors"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// ErrTimeout is returned when a computation was cancelled before a solution
// could be found.
var ErrTimeout = errors.New("could not find the solution in time")

// A Signal tells whether the current computation must stop.
type Signal interface {
	Signaled() bool
}

type never struct{}

func (never) Signaled() bool { return false }

// Never is a Signal that is never raised.
var Never Signal = never{}

// A Flag is a Signal that can be raised from another goroutine.
// The zero value is a lowered flag. Once raised, it stays raised.
type Flag struct {
	raised atomic.Bool
}

// Signaled implements Signal.
func (f *Flag) Signaled() bool { return f.raised.Load() }

// Signal raises the flag.
func (f *Flag) Signal() { f.raised.Store(true) }

// Check returns ErrTimeout if sig was raised, nil otherwise.
func Check(sig Signal) error {
	if sig.Signaled() {
		return ErrTimeout
	}
	return nil
}

// Run calls work with a signal that is raised once timeout has elapsed or ctx
// is done, whichever happens first. A zero or negative timeout means no time
// limit. If neither a timeout nor a cancellable context is given, work is
// called synchronously with Never.
//
// Otherwise work runs on a single worker goroutine. Run waits for its result;
// on expiry it raises the signal, waits for the worker to return and reports
// ErrTimeout, discarding whatever the worker produced.
func Run[T any](ctx context.Context, timeout time.Duration, work func(Signal) (T, error)) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 && ctx.Done() == nil {
		return work(Never)
	}
	if ctx.Err() != nil {
		var zero T
		return zero, ErrTimeout
	}
	var (
		flag   Flag
		result T
		g      errgroup.Group
		done   = make(chan struct{})
	)
	g.Go(func() error {
		defer close(done)
		res, err := work(&flag)
		result = res
		return err
	})
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case <-done:
		err := g.Wait()
		return result, err
	case <-expired:
	case <-ctx.Done():
	}
	flag.Signal()
	_ = g.Wait()
	var zero T
	return zero, ErrTimeout
}
