package paging

import "errors"

var (
	// ErrInvalidIndex is returned for an index outside [0, pageCount).
	ErrInvalidIndex = errors.New("invalid page index")

	// ErrInvalidPageCount is returned when zero pages are configured.
	ErrInvalidPageCount = errors.New("invalid page count")

	// ErrNotConfigured is returned for events received before Configure.
	ErrNotConfigured = errors.New("coordinator not configured")

	// ErrAlreadyConfigured is returned by a second Configure call.
	ErrAlreadyConfigured = errors.New("coordinator already configured")

	// ErrNoTransition is returned for a completion report with nothing in flight.
	ErrNoTransition = errors.New("no transition in flight")
)

// Reasons reported to observers for events dropped without a caller error.
var (
	// ErrTrackingSuppressed marks scroll updates ignored while a coordinator-issued
	// transition is in flight and the Renderer drives the viewport itself.
	ErrTrackingSuppressed = errors.New("scroll tracking suppressed during transition")

	// ErrSuperseded marks scroll updates dropped because a discrete event arrived in
	// the same batch.
	ErrSuperseded = errors.New("scroll superseded by discrete event")

	// ErrInvalidGeometry is returned for non-finite scroll positions or negative widths.
	ErrInvalidGeometry = errors.New("invalid geometry")
)
