// Package resilience holds small stateful guards for flaky upstreams.
package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("breaker open")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// Breaker trips after a run of consecutive failures and lets a limited
// number of probe requests through once the cooldown has passed.
type Breaker struct {
	mu sync.Mutex

	maxFailures int
	cooldown    time.Duration
	maxProbes   int

	state    BreakerState
	failures int
	openedAt time.Time
	probes   int
	probeOK  int
	clock    func() time.Time
}

func NewBreaker(maxFailures int, cooldown time.Duration, maxProbes int) *Breaker {
	if maxFailures < 1 {
		maxFailures = 1
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	if maxProbes < 1 {
		maxProbes = 1
	}

	return &Breaker{
		maxFailures: maxFailures,
		cooldown:    cooldown,
		maxProbes:   maxProbes,
		clock:       time.Now,
	}
}

// Allow reports whether a request may proceed. Callers must follow up
// with Success or Failure for every allowed request.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen {
		if b.clock().Sub(b.openedAt) < b.cooldown {
			return ErrBreakerOpen
		}
		b.state = BreakerHalfOpen
		b.probes = 0
		b.probeOK = 0
	}

	if b.state == BreakerHalfOpen {
		if b.probes >= b.maxProbes {
			return ErrBreakerOpen
		}
		b.probes++
	}

	return nil
}

func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures = 0
	case BreakerHalfOpen:
		b.probeOK++
		if b.probeOK >= b.maxProbes {
			b.reset()
		}
	}
}

func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.maxFailures {
			b.trip()
		}
	case BreakerHalfOpen:
		b.trip()
	case BreakerOpen:
		b.openedAt = b.clock()
	}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen && b.clock().Sub(b.openedAt) >= b.cooldown {
		return BreakerHalfOpen
	}
	return b.state
}

func (b *Breaker) reset() {
	b.state = BreakerClosed
	b.failures = 0
	b.probes = 0
	b.probeOK = 0
	b.openedAt = time.Time{}
}

func (b *Breaker) trip() {
	b.state = BreakerOpen
	b.openedAt = b.clock()
	b.probes = 0
	b.probeOK = 0
}
