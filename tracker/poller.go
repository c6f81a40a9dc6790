package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// DefaultInterval is the period between polls
const DefaultInterval = 30 * time.Second

// PollerOption configures a Poller
type PollerOption func(*Poller)

// WithInterval overrides DefaultInterval
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithStyler sets the styler used for new markers
func WithStyler(s Styler) PollerOption {
	return func(p *Poller) { p.styler = s }
}

// Poller refreshes a Layer from a Source on a fixed schedule.
// Cycles may overlap; in-flight fetches are never cancelled.
type Poller struct {
	source   Source
	layer    *Layer
	styler   Styler
	interval time.Duration

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	inflight conc.WaitGroup
}

// NewPoller creates a stopped poller
func NewPoller(source Source, layer *Layer, opts ...PollerOption) *Poller {
	p := &Poller{
		source:   source,
		layer:    layer,
		styler:   Styler{PixelRatio: 1},
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start fires one tick immediately and then one per interval until Stop or
// until ctx is done. Calling Start on a running poller does nothing; once ctx
// is done the poller may be started again.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	p.spawn()
	go p.loop(ctx, p.done)
}

// Stop halts the schedule and waits for ticks already in flight
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	p.inflight.Wait()
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer func() {
		p.mu.Lock()
		if p.done == done {
			p.cancel()
			p.cancel, p.done = nil, nil
		}
		p.mu.Unlock()
		close(done)
	}()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.spawn()
		}
	}
}

func (p *Poller) spawn() {
	p.inflight.Go(func() {
		_ = p.Tick(context.Background())
	})
}

// Tick runs one fetch-and-rebuild cycle. On failure the layer keeps its
// previous markers and the error is logged and returned.
func (p *Poller) Tick(ctx context.Context) error {
	feed, err := p.source.Fetch(ctx)
	if err != nil {
		var pe *PollError
		if !errors.As(err, &pe) {
			err = &PollError{Stage: "fetch", Err: err}
		}
		log.Warn().Err(err).Msg("bus poll failed, keeping previous markers")
		return err
	}

	markers := BuildMarkers(feed, p.styler)
	if err := p.layer.ReplaceAll(markers); err != nil {
		err = &PollError{Stage: "render", Err: err}
		log.Warn().Err(err).Int("markers", len(markers)).Msg("rendering markers failed")
		return err
	}
	log.Debug().Int("entities", len(feed.Entity)).Int("markers", len(markers)).Msg("markers replaced")
	return nil
}
