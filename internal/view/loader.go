// ABOUTME: Screen-level load/submit state with cancellation bound to its lifetime.
// ABOUTME: Newer loads supersede older ones; closed or stale results are dropped.
package view

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrBusy is returned by Submit while another action is running.
	ErrBusy = errors.New("another action is in progress")
	// ErrClosed is returned once the loader has been closed.
	ErrClosed = errors.New("view closed")
	// ErrSuperseded is returned by a Load whose result was replaced by a newer one.
	ErrSuperseded = errors.New("load superseded")
)

// State is what a screen renders.
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Err     error
}

// Loader owns the state of one screen.
type Loader[T any] struct {
	mu        sync.Mutex
	state     State[T]
	gen       uint64
	cancel    context.CancelFunc
	submit    context.CancelFunc
	busy      bool
	closed    bool
	listeners []func(State[T])
}

// NewLoader returns an empty loader.
func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{}
}

// State returns a copy of the current state.
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// OnChange registers fn to run after every state change.
func (l *Loader[T]) OnChange(fn func(State[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// Load runs fetch and stores its result. A Load started while another is in
// flight cancels the older one, which then returns ErrSuperseded.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.state.Loading = true
	l.mu.Unlock()
	l.notify()

	data, err := fetch(ctx)

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if gen != l.gen {
		l.mu.Unlock()
		return ErrSuperseded
	}
	l.cancel = nil
	l.state.Loading = false
	if err != nil {
		l.state.Err = err
	} else {
		l.state.Data = data
		l.state.HasData = true
		l.state.Err = nil
	}
	l.mu.Unlock()
	l.notify()
	return err
}

// Submit runs a user action. Only one action may run at a time.
func (l *Loader[T]) Submit(ctx context.Context, action func(context.Context) error) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.busy {
		l.mu.Unlock()
		return ErrBusy
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	l.busy = true
	l.submit = cancel
	l.mu.Unlock()

	err := action(ctx)

	l.mu.Lock()
	l.busy = false
	l.submit = nil
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	changed := err != nil || l.state.Err != nil
	l.state.Err = err
	l.mu.Unlock()
	if changed {
		l.notify()
	}
	return err
}

// Close cancels in-flight work and freezes the state. Safe to call twice.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.submit != nil {
		l.submit()
		l.submit = nil
	}
	l.listeners = nil
}

func (l *Loader[T]) notify() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	snap := l.state
	fns := append([]func(State[T]){}, l.listeners...)
	l.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
