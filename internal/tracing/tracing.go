// Package tracing is a thin facade over the schuko tracing framework.
// It routes all of phrasal's diagnostic output to the global core tracer,
// keeping the engine packages free of tracer plumbing.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Tracer returns the tracer all phrasal packages log to.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Debugf traces at debug level.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces at info level.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces at error level.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}

// P attaches a key/value parameter to the next trace message.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// SetTestingLog redirects tracing output to the log of a testing.T.
// The redirection is undone when the test finishes.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}
