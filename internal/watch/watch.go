// SPDX-License-Identifier: MIT

// Package watch owns the deferred execution of navigation decisions. The
// status core returns a pure decision plus delay on every call; Navigator is
// the caller-side task handle that schedules the redirect and cancels it when
// a newer status supersedes the pending one. At most one navigation is ever
// pending per Navigator.
package watch

import (
	"sync"
	"time"

	xglog "github.com/posecare/statusd/internal/log"
	"github.com/posecare/statusd/internal/status"
)

// Navigator tracks the observed status of one analysis job and emits
// navigation actions on Actions after their delay elapses, unless a newer
// observation cancels them first.
type Navigator struct {
	mu      sync.Mutex
	current status.Status
	timer   *time.Timer
	closed  bool

	actions chan status.NavigationAction
	scale   func(time.Duration) time.Duration
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithDelayScale replaces the delay applied to scheduled actions. Tests use
// it to shrink the two/three second production delays to milliseconds.
func WithDelayScale(f func(time.Duration) time.Duration) Option {
	return func(n *Navigator) { n.scale = f }
}

// New returns a Navigator in the Pending state with no scheduled work.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		current: status.Pending,
		actions: make(chan status.NavigationAction, 1),
		scale:   func(d time.Duration) time.Duration { return d },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Actions delivers scheduled navigation actions after their delay. The
// channel is buffered with depth one; a newer action replaces an undelivered
// older one so a slow consumer always sees the latest decision.
func (n *Navigator) Actions() <-chan status.NavigationAction {
	return n.actions
}

// Current returns the last observed canonical status.
func (n *Navigator) Current() status.Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Observe feeds one polled raw status into the Navigator. Any pending
// navigation is cancelled; if the new status decides a redirect, it is
// scheduled after its delay.
func (n *Navigator) Observe(raw string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}

	n.current = status.Normalize(raw)
	n.cancelPendingLocked()

	action := status.Navigation(raw)
	if action == nil {
		return
	}

	a := *action
	n.timer = time.AfterFunc(n.scale(a.Delay), func() {
		n.emit(a)
	})
}

// Reset cancels pending work and forces the tracked state back to Pending.
// Callers invoke it when (re)entering a view so stale state from a previous
// viewing never leaks across a mount boundary.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = status.Pending
	n.cancelPendingLocked()
}

// Close cancels pending work and stops the Navigator. Observe becomes a
// no-op; Actions is not closed so a racing emit cannot panic.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.cancelPendingLocked()
}

func (n *Navigator) cancelPendingLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Navigator) emit(a status.NavigationAction) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()

	for {
		select {
		case n.actions <- a:
			lg := xglog.WithComponent("watch")
			lg.Debug().
				Str(xglog.FieldEvent, "navigation.emitted").
				Str(xglog.FieldTarget, string(a.Target)).
				Msg("deferred navigation fired")
			return
		default:
			// Drop the undelivered older action and retry with the newer one.
			select {
			case <-n.actions:
			default:
			}
		}
	}
}
