// Package paging keeps a tab strip and a horizontally paged viewport in lock-step.
//
// Core abstractions:
//   - SelectionState: the committed page index and the page count
//   - Position/Slot: indicator geometry for a fractional page or a discrete index
//   - Coordinator: the state machine receiving Renderer events and issuing commands
//   - LifecycleNotifier: show/hide hooks fired when the committed index changes
//   - Observer: fan-out of requests, commits and dropped events to logging, metrics, tracing
//
// The package never draws anything. A Renderer receives TransitionRequest and
// Indicator values and reports back through the Coordinator's event methods, all from
// a single goroutine.
package paging
