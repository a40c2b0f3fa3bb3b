// Package xlog is the thin logging seam primesieve.Sieve logs through, so
// a caller embedding the primesieve package can redirect or silence it
// without reaching into grailbio/base/log's global state.
package xlog

import "github.com/grailbio/base/log"

// Logger is implemented by grailLogger (Default, which forwards to
// github.com/grailbio/base/log's package-level functions) and by Discard
// below.
type Logger interface {
	Printf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// grailLogger adapts github.com/grailbio/base/log's severity loggers
// (log.Error, log.Debug) to the Logger interface.
type grailLogger struct{}

func (grailLogger) Printf(format string, args ...interface{}) { log.Printf(format, args...) }
func (grailLogger) Debugf(format string, args ...interface{}) {
	if log.At(log.Debug) {
		log.Debug.Printf(format, args...)
	}
}
func (grailLogger) Errorf(format string, args ...interface{}) { log.Error.Printf(format, args...) }

// Default logs through github.com/grailbio/base/log, the package used
// throughout this module for diagnostics.
var Default Logger = grailLogger{}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}
func (discard) Debugf(string, ...interface{}) {}
func (discard) Errorf(string, ...interface{}) {}

// Discard is a Logger that drops everything, for callers (tests, library
// consumers) that want primesieve to stay silent.
var Discard Logger = discard{}
