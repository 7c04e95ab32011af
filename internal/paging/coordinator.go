package paging

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// State is the coordinator's state machine position.
type State int

const (
	StateUninitialized State = iota
	StateIdle
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateIdle:
		return "Idle"
	case StateTransitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}

// Config is consumed once by Configure.
type Config struct {
	// HandlesViewportExternally means the Renderer scrolls the viewport itself to
	// honor a request, so scroll reports during that transition are echoes.
	HandlesViewportExternally bool
	// StripWidth is the initial strip width; ViewportResized replaces it.
	StripWidth float64
	Theme      Theme
}

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithObserver adds an observer. Repeated options fan out through a MultiObserver.
func WithObserver(obs Observer) Option {
	return func(c *Coordinator) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}

// WithIDGenerator replaces the TransitionRequest ID source.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(c *Coordinator) {
		if gen != nil {
			c.newID = gen
		}
	}
}

type target struct {
	index    int
	animated bool
	source   Source
}

// Coordinator synchronizes the tab strip and the paged viewport.
// It is not safe for concurrent use: every call must come from one goroutine.
type Coordinator struct {
	renderer  Renderer
	observer  Observer
	observers []Observer
	newID     func() uuid.UUID

	cfg        Config
	pages      []Page
	selection  *SelectionState
	notifier   *LifecycleNotifier
	state      State
	stripWidth float64
	indicator  Indicator

	inFlight       *TransitionRequest
	inFlightSource Source
	pending        *target

	busy     bool
	deferred []Event
}

// New creates an unconfigured coordinator driving renderer.
func New(renderer Renderer, opts ...Option) *Coordinator {
	c := &Coordinator{
		renderer: renderer,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.observers) == 0 {
		c.observer = nopObserver{}
	} else {
		// Always fan out so a panicking observer is recovered.
		c.observer = NewMultiObserver(c.observers...)
	}
	return c
}

// Configure installs the pages and commits the initial page without animation.
// An initialIndex past the last page is clamped to it; a negative one to 0.
// Zero pages fail with ErrInvalidPageCount and leave the coordinator Uninitialized.
// Events queued by callbacks during Configure report only through Observer.OnDropped.
func (c *Coordinator) Configure(pages []Page, initialIndex int, cfg Config) error {
	if c.state != StateUninitialized {
		return ErrAlreadyConfigured
	}
	sel, err := NewSelectionState(len(pages))
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	if initialIndex >= len(pages) {
		initialIndex = len(pages) - 1
	}
	if initialIndex < 0 {
		initialIndex = 0
	}

	c.busy = true
	defer c.release()
	c.cfg = cfg
	if c.stripWidth == 0 {
		c.stripWidth = cfg.StripWidth
	}
	c.pages = pages
	c.selection = sel
	c.notifier = NewLifecycleNotifier(pages)
	c.state = StateTransitioning
	c.issue(NoIndex, initialIndex, false, SourceInitial)
	_ = c.drain()
	return nil
}

// TabTapped handles a tap on tab index.
func (c *Coordinator) TabTapped(index int) error {
	return c.Handle(TabTapped{Index: index})
}

// ViewportScrolled handles live viewport movement.
func (c *Coordinator) ViewportScrolled(fractionalPage float64) error {
	return c.Handle(ViewportScrolled{Progress: ScrollProgress{FractionalPage: fractionalPage}})
}

// ViewportSettled handles the viewport coming to rest on page index.
func (c *Coordinator) ViewportSettled(index int) error {
	return c.Handle(ViewportSettled{Index: index})
}

// TransitionCompleted acknowledges the in-flight request at page reached.
func (c *Coordinator) TransitionCompleted(reached int) error {
	return c.Handle(TransitionCompleted{Reached: reached})
}

// TransitionCancelled reports the in-flight request abandoned at page reached.
func (c *Coordinator) TransitionCancelled(reached int) error {
	return c.Handle(TransitionCancelled{Reached: reached})
}

// ViewportResized handles a new strip width.
func (c *Coordinator) ViewportResized(width float64) error {
	return c.Handle(ViewportResized{Width: width})
}

// Handle processes one event. Events arriving from inside a Renderer or Observer
// callback are queued and run after the current one, never interleaved: the nested
// call returns nil and their errors are joined into the outermost Handle's result.
func (c *Coordinator) Handle(ev Event) error {
	if c.busy {
		c.deferred = append(c.deferred, ev)
		return nil
	}
	c.busy = true
	defer c.release()
	err := c.handle(ev)
	if queued := c.drain(); queued != nil {
		return errors.Join(err, queued)
	}
	return err
}

// Dispatch processes one frame's worth of events in order. When the batch carries a
// discrete event, its scroll updates are dropped.
func (c *Coordinator) Dispatch(events ...Event) error {
	discrete := false
	for _, ev := range events {
		if ev.Discrete() {
			discrete = true
			break
		}
	}
	var errs []error
	for _, ev := range events {
		if _, ok := ev.(ViewportScrolled); ok && discrete {
			c.observer.OnDropped(ev, ErrSuperseded)
			continue
		}
		if err := c.Handle(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Coordinator) drain() error {
	var errs []error
	for len(c.deferred) > 0 {
		ev := c.deferred[0]
		c.deferred = c.deferred[1:]
		if err := c.handle(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// release reopens the coordinator after an event, even one that panicked in a
// Renderer or Page callback. Events queued behind a panic are discarded.
func (c *Coordinator) release() {
	c.busy = false
	c.deferred = nil
}

func (c *Coordinator) handle(ev Event) error {
	if r, ok := ev.(ViewportResized); ok {
		return c.resized(r)
	}
	if c.state == StateUninitialized {
		return c.drop(ev, ErrNotConfigured)
	}
	switch e := ev.(type) {
	case TabTapped:
		return c.tapped(e)
	case ViewportScrolled:
		return c.scrolled(e)
	case ViewportSettled:
		return c.settled(e)
	case TransitionCompleted:
		return c.completed(ev, e.Reached, false)
	case TransitionCancelled:
		return c.completed(ev, e.Reached, true)
	default:
		return c.drop(ev, fmt.Errorf("unknown event %T", ev))
	}
}

func (c *Coordinator) tapped(e TabTapped) error {
	if !c.selection.Contains(e.Index) {
		return c.drop(e, c.indexErr(e.Index))
	}
	if c.state == StateTransitioning {
		c.retarget(e.Index, true, SourceTap)
		return nil
	}
	cur, _ := c.selection.Current()
	if e.Index == cur {
		return nil
	}
	c.issue(cur, e.Index, true, SourceTap)
	return nil
}

func (c *Coordinator) scrolled(e ViewportScrolled) error {
	f := e.Progress.FractionalPage
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return c.drop(e, fmt.Errorf("scroll to %v: %w", f, ErrInvalidGeometry))
	}
	if c.state == StateTransitioning && c.cfg.HandlesViewportExternally {
		c.observer.OnDropped(e, ErrTrackingSuppressed)
		return nil
	}
	last := float64(c.selection.PageCount() - 1)
	f = math.Max(0, math.Min(f, last))
	ind, _ := Position(c.selection.PageCount(), c.stripWidth, f)
	c.setIndicator(ind)
	return nil
}

func (c *Coordinator) settled(e ViewportSettled) error {
	if !c.selection.Contains(e.Index) {
		return c.drop(e, c.indexErr(e.Index))
	}
	if c.state == StateTransitioning {
		c.retarget(e.Index, false, SourceSettle)
		return nil
	}
	cur, _ := c.selection.Current()
	if e.Index == cur {
		c.setIndicator(c.slot(cur))
		return nil
	}
	c.issue(cur, e.Index, false, SourceSettle)
	return nil
}

func (c *Coordinator) completed(ev Event, reached int, cancelled bool) error {
	if c.state != StateTransitioning || c.inFlight == nil {
		return c.drop(ev, ErrNoTransition)
	}
	if !c.selection.Contains(reached) {
		return c.drop(ev, c.indexErr(reached))
	}
	source := c.inFlightSource
	if cancelled {
		source = SourceCancel
	}
	c.commit(c.inFlight.ID, reached, source)

	if p := c.pending; p != nil {
		c.pending = nil
		if p.index != reached {
			c.issue(reached, p.index, p.animated, p.source)
		}
	}
	return nil
}

func (c *Coordinator) resized(e ViewportResized) error {
	if math.IsNaN(e.Width) || math.IsInf(e.Width, 0) || e.Width < 0 {
		return c.drop(e, fmt.Errorf("resize to %v: %w", e.Width, ErrInvalidGeometry))
	}
	c.stripWidth = e.Width
	if c.state == StateUninitialized {
		return nil
	}
	c.setIndicator(c.slot(c.anchor()))
	return nil
}

// retarget coalesces a discrete event arriving mid-transition: the newest target wins
// and is issued once the in-flight request completes.
func (c *Coordinator) retarget(index int, animated bool, source Source) {
	if index == c.inFlight.To {
		c.pending = nil
		return
	}
	c.pending = &target{index: index, animated: animated, source: source}
}

func (c *Coordinator) issue(from, to int, animated bool, source Source) {
	req := TransitionRequest{ID: c.newID(), From: from, To: to, Animated: animated}
	c.state = StateTransitioning
	c.inFlight = &req
	c.inFlightSource = source
	c.observer.OnTransitionRequested(req)
	c.renderer.RequestTransition(req)
	if !animated {
		c.commit(req.ID, to, source)
		return
	}
	c.setIndicator(c.slot(to))
}

func (c *Coordinator) commit(id uuid.UUID, next int, source Source) {
	prev, _ := c.selection.Current()
	// next is validated by every caller.
	_ = c.selection.Set(next)
	c.state = StateIdle
	c.inFlight = nil
	c.notifier.IndexCommitted(prev, next)
	c.setIndicator(c.slot(next))
	c.observer.OnCommitted(Commit{RequestID: id, Previous: prev, Next: next, Source: source})
}

func (c *Coordinator) setIndicator(ind Indicator) {
	c.indicator = ind
	c.renderer.UpdateIndicator(ind)
}

func (c *Coordinator) slot(index int) Indicator {
	ind, _ := Slot(c.selection.PageCount(), c.stripWidth, index)
	return ind
}

// anchor is the index the indicator rests on: the in-flight target, else the selection.
func (c *Coordinator) anchor() int {
	if c.inFlight != nil {
		return c.inFlight.To
	}
	cur, _ := c.selection.Current()
	return cur
}

func (c *Coordinator) indexErr(index int) error {
	return fmt.Errorf("page %d of %d: %w", index, c.selection.PageCount(), ErrInvalidIndex)
}

func (c *Coordinator) drop(ev Event, err error) error {
	c.observer.OnDropped(ev, err)
	return err
}

// State returns the current state.
func (c *Coordinator) State() State {
	return c.state
}

// Selected returns the committed index; ok is false before Configure.
func (c *Coordinator) Selected() (int, bool) {
	if c.selection == nil {
		return NoIndex, false
	}
	return c.selection.Current()
}

// InFlight returns the animated request awaiting acknowledgement.
func (c *Coordinator) InFlight() (TransitionRequest, bool) {
	if c.inFlight == nil {
		return TransitionRequest{}, false
	}
	return *c.inFlight, true
}

// Pending returns the coalesced target queued behind the in-flight request.
func (c *Coordinator) Pending() (int, bool) {
	if c.pending == nil {
		return NoIndex, false
	}
	return c.pending.index, true
}

// Indicator returns the last geometry sent to the Renderer.
func (c *Coordinator) Indicator() Indicator {
	return c.indicator
}

// StripWidth returns the width used for indicator geometry.
func (c *Coordinator) StripWidth() float64 {
	return c.stripWidth
}

// HandlesViewportExternally reports the configured scroll-suppression policy.
func (c *Coordinator) HandlesViewportExternally() bool {
	return c.cfg.HandlesViewportExternally
}

// Theme returns the configured theme unchanged.
func (c *Coordinator) Theme() Theme {
	return c.cfg.Theme
}

// PageCount returns the number of configured pages.
func (c *Coordinator) PageCount() int {
	return len(c.pages)
}

// Label returns the label of page index, or "" when out of range.
func (c *Coordinator) Label(index int) string {
	if index < 0 || index >= len(c.pages) {
		return ""
	}
	return c.pages[index].Label()
}
