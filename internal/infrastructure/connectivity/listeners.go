// Package connectivity implements the connectivity oracle: a point-in-time
// reachability snapshot plus change notifications.
package connectivity

import "sync"

// listeners is the subscriber registry shared by the oracle implementations.
type listeners struct {
	mu   sync.Mutex
	next uint64
	fns  map[uint64]func(online bool)
}

func (l *listeners) add(fn func(online bool)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[uint64]func(bool))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// notify calls every listener outside the lock, so a listener may unsubscribe
// itself or query the oracle.
func (l *listeners) notify(online bool) {
	l.mu.Lock()
	fns := make([]func(bool), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}
