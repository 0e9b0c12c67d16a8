package connectivity

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-sync/internal/core/ports"
	"github.com/99minutos/shipment-sync/internal/pkg/metrics"
)

const (
	defaultInterval     = 5 * time.Second
	defaultProbeTimeout = 3 * time.Second
)

var _ ports.ConnectivityOracle = (*Prober)(nil)

// ProberConfig configures the reachability probe.
type ProberConfig struct {
	URL      string
	Interval time.Duration
	Timeout  time.Duration
}

// Prober decides reachability by sending HEAD requests to a well-known URL.
// Any HTTP response means online; a transport error means offline.
type Prober struct {
	url      string
	interval time.Duration
	client   *http.Client
	log      zerolog.Logger

	// checkMu orders checks so an older result never overwrites a newer one.
	checkMu sync.Mutex

	mu     sync.RWMutex
	online bool
	known  bool
	subs   listeners
}

func NewProber(cfg ProberConfig, log zerolog.Logger) *Prober {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Prober{
		url:      cfg.URL,
		interval: interval,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// CurrentlyOnline probes now and returns the fresh result.
func (p *Prober) CurrentlyOnline(ctx context.Context) bool {
	return p.Check(ctx)
}

func (p *Prober) OnTransition(fn func(online bool)) func() {
	return p.subs.add(fn)
}

// Last returns the most recent probe result without probing.
func (p *Prober) Last() (online, known bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online, p.known
}

// Check probes once, records the result and notifies listeners on a change.
// The first observation establishes the baseline and notifies nobody.
// Concurrent checks run one at a time; listeners are called on the checking
// goroutine and must not call Check themselves.
func (p *Prober) Check(ctx context.Context) bool {
	p.checkMu.Lock()
	defer p.checkMu.Unlock()

	online := p.probe(ctx)

	p.mu.Lock()
	changed := p.known && p.online != online
	p.online = online
	p.known = true
	p.mu.Unlock()

	metrics.SetOnline(online)
	if changed {
		p.log.Info().Bool("online", online).Msg("connectivity changed")
		recordTransition(online)
		p.subs.notify(online)
	}
	return online
}

// Run probes every interval until ctx is cancelled.
func (p *Prober) Run(ctx context.Context) {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

func (p *Prober) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		p.log.Error().Err(err).Str("url", p.url).Msg("invalid connectivity probe url")
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Debug().Err(err).Msg("connectivity probe failed")
		return false
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return true
}

func recordTransition(online bool) {
	metrics.SetOnline(online)
	to := "offline"
	if online {
		to = "online"
	}
	metrics.ConnectivityTransitionsTotal.WithLabelValues(to).Inc()
}
