/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Readiness is a one-shot future for the export capabilities. It is settled
// exactly once, by Resolve or Fail; later calls are ignored.
type Readiness struct {
	once sync.Once
	done chan struct{}
	caps *Capabilities
	err  error
}

// NewReadiness returns an unsettled future.
func NewReadiness() *Readiness {
	return &Readiness{done: make(chan struct{})}
}

// Resolve settles the future with caps.
func (r *Readiness) Resolve(caps *Capabilities) {
	r.once.Do(func() {
		r.caps = caps
		close(r.done)
	})
}

// Fail settles the future with err.
func (r *Readiness) Fail(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Ready reports, without blocking, whether capabilities are available.
func (r *Readiness) Ready() bool {
	select {
	case <-r.done:
		return r.err == nil
	default:
		return false
	}
}

// Done is closed once the future is settled, successfully or not.
func (r *Readiness) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the future settles, ctx ends or timeout elapses. A
// non-positive timeout only checks the current state.
func (r *Readiness) Wait(ctx context.Context, timeout time.Duration) (*Capabilities, error) {
	if timeout <= 0 {
		select {
		case <-r.done:
			return r.result()
		default:
			return nil, fmt.Errorf("%w: capabilities still loading", ErrExportUnavailable)
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-r.done:
		return r.result()
	case <-timer.C:
		return nil, fmt.Errorf("%w: capabilities still loading after %s", ErrExportUnavailable, timeout)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrExportUnavailable, ctx.Err())
	}
}

func (r *Readiness) result() (*Capabilities, error) {
	if r.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportUnavailable, r.err)
	}

	return r.caps, nil
}

// LoadAsync starts loading capabilities on a new goroutine and returns the
// future that will carry them.
func LoadAsync(opts CapabilityOptions) *Readiness {
	r := NewReadiness()

	go func() {
		caps, err := LoadCapabilities(opts)
		if err != nil {
			r.Fail(err)
			return
		}

		r.Resolve(caps)
	}()

	return r
}
