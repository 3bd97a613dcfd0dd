// Package apperrors holds the typed failures bigcalc reports: operand and
// syntax problems, evaluation faults, timeouts and bad configuration.
//
// Each type maps to a process exit code through ExitCodeFor. Callers wrap
// with %w so errors.As keeps finding the typed value through any number of
// annotation layers.
package apperrors
