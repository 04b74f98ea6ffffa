// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the app model, key routing, shortcut table and screen stack
// - the quit-confirmation state machine
// - chrome rendering (header, menu bar, status bar, footer) and theme
//
// Not allowed here:
// - concrete modal screen implementations (see package screens)
// - low-level compositing primitives (see package widgets)
package core
