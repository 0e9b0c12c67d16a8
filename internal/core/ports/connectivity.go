package ports

import "context"

// ConnectivityOracle reports network reachability and notifies on changes.
type ConnectivityOracle interface {
	CurrentlyOnline(ctx context.Context) bool
	// OnTransition registers fn to be called whenever reachability changes.
	// The returned func deregisters it and is safe to call more than once.
	OnTransition(fn func(online bool)) (unsubscribe func())
}
