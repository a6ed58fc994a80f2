package runner

// Reporter receives the user-facing output of a run.
type Reporter interface {
	// LogLine records a suite-level progress message.
	LogLine(text string)
	// RecordSuccess records that the named test passed.
	RecordSuccess(testName string)
	// RecordFailure records that the named test failed.
	RecordFailure(testName string)
}

// TestStartReporter is implemented by reporters that want to know when a
// test's request is about to be sent, e.g. to show progress.
type TestStartReporter interface {
	ReportTestStart(testName string)
}
