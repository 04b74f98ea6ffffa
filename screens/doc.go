// Package screens contains the concrete modal overlays pushed on top of the
// main view: menu dialogs, the statements wizard flow and the file browser.
//
// Screens never mutate the stack themselves; they emit core messages
// (push, pop, replace) and let the app model apply them.
package screens
