package paging

import (
	"fmt"

	"github.com/google/uuid"
)

// Renderer executes the visual side of the pager: it moves the viewport, draws the
// indicator and reports user input back through the Coordinator.
type Renderer interface {
	// RequestTransition asks the Renderer to bring page req.To into view.
	// Animated requests must be acknowledged with TransitionCompleted or
	// TransitionCancelled; non-animated ones are committed on issue.
	RequestTransition(req TransitionRequest)
	UpdateIndicator(ind Indicator)
}

// Page is one pageable content unit. Show and Hide are fire-and-forget.
type Page interface {
	Label() string
	Show()
	Hide()
}

// TransitionRequest describes one requested move between pages.
type TransitionRequest struct {
	ID       uuid.UUID
	From     int // NoIndex for the initial transition
	To       int
	Animated bool
}

// HasFrom reports whether the request starts from a committed page.
func (r TransitionRequest) HasFrom() bool {
	return r.From != NoIndex
}

func (r TransitionRequest) String() string {
	from := "none"
	if r.HasFrom() {
		from = fmt.Sprintf("%d", r.From)
	}
	return fmt.Sprintf("transition %s->%d animated=%v", from, r.To, r.Animated)
}

// ScrollProgress is the viewport offset divided by the page width.
type ScrollProgress struct {
	FractionalPage float64
}

// Source identifies what caused a commit.
type Source string

const (
	SourceInitial Source = "initial"
	SourceTap     Source = "tap"
	SourceSettle  Source = "settle"
	SourceCancel  Source = "cancel"
)

// Commit records a committed selection change.
type Commit struct {
	RequestID uuid.UUID
	Previous  int // NoIndex before the first commit
	Next      int
	Source    Source
}

// Event is a Renderer-originated input. Discrete events commit selection;
// continuous ones only drive the indicator.
type Event interface {
	Discrete() bool
	String() string
}

// TabTapped reports a tap on the tab at Index.
type TabTapped struct{ Index int }

// ViewportScrolled reports live viewport movement.
type ViewportScrolled struct{ Progress ScrollProgress }

// ViewportSettled reports the viewport coming to rest on page Index.
type ViewportSettled struct{ Index int }

// TransitionCompleted acknowledges the in-flight request; Reached is the page actually shown.
type TransitionCompleted struct{ Reached int }

// TransitionCancelled reports an in-flight request the Renderer abandoned at page Reached.
type TransitionCancelled struct{ Reached int }

// ViewportResized reports a new strip/viewport width.
type ViewportResized struct{ Width float64 }

func (TabTapped) Discrete() bool           { return true }
func (ViewportScrolled) Discrete() bool    { return false }
func (ViewportSettled) Discrete() bool     { return true }
func (TransitionCompleted) Discrete() bool { return true }
func (TransitionCancelled) Discrete() bool { return true }
func (ViewportResized) Discrete() bool     { return false }

func (e TabTapped) String() string { return fmt.Sprintf("tab_tapped(%d)", e.Index) }
func (e ViewportScrolled) String() string {
	return fmt.Sprintf("viewport_scrolled(%.3f)", e.Progress.FractionalPage)
}
func (e ViewportSettled) String() string     { return fmt.Sprintf("viewport_settled(%d)", e.Index) }
func (e TransitionCompleted) String() string { return fmt.Sprintf("transition_completed(%d)", e.Reached) }
func (e TransitionCancelled) String() string { return fmt.Sprintf("transition_cancelled(%d)", e.Reached) }
func (e ViewportResized) String() string     { return fmt.Sprintf("viewport_resized(%.1f)", e.Width) }
