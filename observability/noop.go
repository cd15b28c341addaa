package observability

// NoopObserver is a no-op implementation of Observer.
// Useful for testing or as a default value.
type NoopObserver struct{}

// ObserveRequest does nothing.
func (n *NoopObserver) ObserveRequest(RequestContext) {}

// NewNoopObserver creates a new NoopObserver.
func NewNoopObserver() Observer {
	return &NoopObserver{}
}
