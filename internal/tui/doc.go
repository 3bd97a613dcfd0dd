// Package tui is the full-screen calculator: an expression prompt above a
// scroll-back of results, with live memory statistics and a sparkline of
// recent evaluation times.
//
// Several expressions separated by ';' are evaluated concurrently as one
// batch.
package tui
