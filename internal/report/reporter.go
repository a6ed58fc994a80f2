package report

import (
	"patr/pkg/logging"
)

// Reporter sends every event to the console and, when configured, to a log
// file. It holds the run-level pass/fail flag.
type Reporter struct {
	console  *Console
	logFile  *LogFile
	failed   bool
	writeErr error
}

// New creates a Reporter. logFile may be nil.
func New(console *Console, logFile *LogFile) *Reporter {
	return &Reporter{console: console, logFile: logFile}
}

// LogLine implements runner.Reporter.
func (r *Reporter) LogLine(msg string) {
	r.console.LogLine(msg)
	if r.logFile != nil {
		r.track(r.logFile.LogLine(msg))
	}
}

// RecordSuccess implements runner.Reporter.
func (r *Reporter) RecordSuccess(name string) {
	r.console.RecordSuccess(name)
	if r.logFile != nil {
		r.track(r.logFile.RecordSuccess(name))
	}
}

// RecordFailure implements runner.Reporter and marks the run as failed.
func (r *Reporter) RecordFailure(name string) {
	r.failed = true
	r.console.RecordFailure(name)
	if r.logFile != nil {
		r.track(r.logFile.RecordFailure(name))
	}
}

// ReportTestStart implements runner.TestStartReporter.
func (r *Reporter) ReportTestStart(name string) {
	r.console.ReportTestStart(name)
}

// HasFailures reports whether RecordFailure was called.
func (r *Reporter) HasFailures() bool {
	return r.failed
}

// Err returns the first log file write error, if any. Write errors never stop
// a run.
func (r *Reporter) Err() error {
	return r.writeErr
}

func (r *Reporter) track(err error) {
	if err == nil {
		return
	}
	logging.Warn("Report", "Log file write failed: %v", err)
	if r.writeErr == nil {
		r.writeErr = err
	}
}
