// Package cli renders bigcalc results on a terminal and hosts the
// line-oriented REPL.
//
// Display* functions write to an io.Writer. Format* functions return
// strings and perform no I/O.
package cli
