// Package widgets holds rendering primitives shared by the chrome and the
// modal screens: ANSI-aware popup compositing and the dashboard chart.
package widgets
