package schema

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// State is the readiness of the process-wide schema
type State int32

const (
	StateUncompiled State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uncompiled"
	}
}

type gateSnapshot struct {
	state State
	desc  *Descriptor
	err   error
}

// Gate holds the compiled descriptor behind an explicit readiness state.
// The zero value is an uncompiled gate. Reads are lock-free.
type Gate struct {
	once sync.Once
	snap atomic.Pointer[gateSnapshot]
}

// NewGate returns an uncompiled gate
func NewGate() *Gate {
	return &Gate{}
}

// Load runs loader exactly once and records the outcome. Later calls return
// the first call's error without loading again.
func (g *Gate) Load(ctx context.Context, loader *Loader) error {
	g.once.Do(func() {
		d, err := loader.Load(ctx)
		if err != nil {
			g.Fail(err)
			return
		}
		g.Ready(d)
	})
	return g.Err()
}

// Ready publishes a compiled descriptor
func (g *Gate) Ready(d *Descriptor) {
	g.snap.Store(&gateSnapshot{state: StateReady, desc: d})
}

// Fail records a load failure
func (g *Gate) Fail(err error) {
	g.snap.Store(&gateSnapshot{state: StateFailed, err: err})
}

// State reports the current readiness
func (g *Gate) State() State {
	if s := g.snap.Load(); s != nil {
		return s.state
	}
	return StateUncompiled
}

// Err returns the recorded load failure, if any
func (g *Gate) Err() error {
	if s := g.snap.Load(); s != nil {
		return s.err
	}
	return nil
}

// Descriptor returns the compiled descriptor, or an error wrapping
// ErrSchemaUnavailable when the gate is not ready.
func (g *Gate) Descriptor() (*Descriptor, error) {
	s := g.snap.Load()
	switch {
	case s == nil:
		return nil, fmt.Errorf("%w: not loaded yet", ErrSchemaUnavailable)
	case s.state != StateReady:
		return nil, fmt.Errorf("%w: %s", ErrSchemaUnavailable, s.state)
	}
	return s.desc, nil
}
