// Package ui renders a tab pager in the terminal with Bubble Tea.
//
// Core abstractions:
//   - View: A screen or region with its own init, update, view (Elm-style)
//   - Page: A titled View adapted to paging.Page, collecting show/hide commands
//   - PagerView: The paging.Renderer; animates the viewport and indicator with springs
//   - PagerLayout: Tab strip, paged content and help bar, with mouse hit-testing
//   - FocusManager: Tracks and rotates focus across panels
//   - KeybindRegistry: Key to command bindings that also feed the help bar
//
// All paging decisions are made by paging.Coordinator; this package only reports
// what the user and the animation did and draws what the coordinator asks for.
package ui
