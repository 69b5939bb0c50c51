package nxjson

import "log"

// A Reporter receives diagnostics for failed parses. A Parser calls Report
// once for each parse that fails, before returning the error to its caller.
type Reporter interface {
	Report(err *SyntaxError)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(*SyntaxError)

// Report satisfies the Reporter interface.
func (f ReporterFunc) Report(err *SyntaxError) { f(err) }

// Discard is a Reporter that ignores all diagnostics.
var Discard Reporter = ReporterFunc(func(*SyntaxError) {})

// LogReporter returns a Reporter that writes each diagnostic to lg as a
// single line. If lg == nil, the default logger is used.
func LogReporter(lg *log.Logger) Reporter {
	if lg == nil {
		lg = log.Default()
	}
	return ReporterFunc(func(err *SyntaxError) {
		lg.Printf("nxjson: %v", err)
	})
}
