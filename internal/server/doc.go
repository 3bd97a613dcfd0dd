// Package server exposes the process's Prometheus metrics and a health
// check over HTTP while bigcalc runs with --metrics-addr.
package server
