package paging

// Observer receives coordinator activity for logging, metrics and tracing.
// Calls happen on the coordinator's goroutine after the state change they describe.
type Observer interface {
	OnTransitionRequested(req TransitionRequest)
	OnCommitted(c Commit)
	OnDropped(ev Event, reason error)
}

// MultiObserver fans out to multiple observers.
// It handles nil observers gracefully by skipping them.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver forwarding to all non-nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// OnTransitionRequested forwards the call to all observers.
func (m *MultiObserver) OnTransitionRequested(req TransitionRequest) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnTransitionRequested(req) })
	}
}

// OnCommitted forwards the call to all observers.
func (m *MultiObserver) OnCommitted(c Commit) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnCommitted(c) })
	}
}

// OnDropped forwards the call to all observers.
func (m *MultiObserver) OnDropped(ev Event, reason error) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnDropped(ev, reason) })
	}
}

type nopObserver struct{}

func (nopObserver) OnTransitionRequested(TransitionRequest) {}
func (nopObserver) OnCommitted(Commit)                      {}
func (nopObserver) OnDropped(Event, error)                  {}
