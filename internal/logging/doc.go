// Package logging is the structured logger shared by bigcalc's packages.
// Libraries depend only on the Logger interface and default to a no-op;
// the application installs a zerolog logger in console or JSON format.
package logging
