package logging

import (
	"errors"

	"github.com/rs/zerolog"

	"tabpager/internal/paging"
)

// Observer logs coordinator activity.
type Observer struct {
	log zerolog.Logger
}

// Ensure Observer implements paging.Observer.
var _ paging.Observer = (*Observer)(nil)

// NewObserver returns an observer writing to logger.
func NewObserver(logger zerolog.Logger) *Observer {
	return &Observer{log: logger}
}

func (o *Observer) OnTransitionRequested(req paging.TransitionRequest) {
	o.log.Debug().
		Str("request_id", req.ID.String()).
		Int("from", req.From).
		Int("to", req.To).
		Bool("animated", req.Animated).
		Msg("transition requested")
}

func (o *Observer) OnCommitted(c paging.Commit) {
	o.log.Debug().
		Str("request_id", c.RequestID.String()).
		Int("from", c.Previous).
		Int("to", c.Next).
		Str("source", string(c.Source)).
		Msg("selection committed")
}

// OnDropped logs suppression at debug level; invalid input is a warning.
func (o *Observer) OnDropped(ev paging.Event, reason error) {
	evt := o.log.Warn()
	if errors.Is(reason, paging.ErrTrackingSuppressed) || errors.Is(reason, paging.ErrSuperseded) {
		evt = o.log.Debug()
	}
	evt.Err(reason).Str("event", ev.String()).Msg("event dropped")
}
