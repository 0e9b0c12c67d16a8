package connectivity

import (
	"context"
	"sync"

	"github.com/99minutos/shipment-sync/internal/core/ports"
)

var _ ports.ConnectivityOracle = (*Manual)(nil)

// Manual is an oracle whose state is set explicitly, by tests or by an operator.
type Manual struct {
	mu     sync.RWMutex
	online bool
	subs   listeners
}

func NewManual(online bool) *Manual {
	return &Manual{online: online}
}

func (m *Manual) CurrentlyOnline(context.Context) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

func (m *Manual) OnTransition(fn func(online bool)) func() {
	return m.subs.add(fn)
}

// Set changes the state and notifies listeners when it actually changed.
func (m *Manual) Set(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	m.mu.Unlock()

	if changed {
		recordTransition(online)
		m.subs.notify(online)
	}
}
