package runner

import (
	"errors"
	"time"
)

// ErrSuiteFailed is returned by Runner.Run, after every test has been
// processed, when at least one test failed.
var ErrSuiteFailed = errors.New("one or more tests failed")

// SuiteState is the lifecycle state of a suite run.
type SuiteState string

const (
	SuiteNotStarted SuiteState = "NOT_STARTED"
	SuiteInProgress SuiteState = "IN_PROGRESS"
	SuiteCompleted  SuiteState = "COMPLETED"
)

// TestState is the lifecycle state of a single test.
type TestState string

const (
	TestPending TestState = "PENDING"
	TestRunning TestState = "RUNNING"
	TestPassed  TestState = "PASSED"
	TestFailed  TestState = "FAILED"
)

// RequestDescriptor is the request a test resolves to. It lives for a single test.
type RequestDescriptor struct {
	URL     string
	Headers map[string]string
	Query   map[string]string
}

// RequestOutcome is what came back from a request. Transport failures are
// outcomes too: TransportFailed is set, Err holds the cause and StatusCode is
// whatever status was received before the failure, usually 0.
type RequestOutcome struct {
	StatusCode      int
	Body            []byte
	TransportFailed bool
	Err             error
}

// TestResult records how a single test ended.
type TestResult struct {
	Name       string
	State      TestState
	StatusCode int
	Verdict    Verdict
	Duration   time.Duration
}

// SuiteResult records how a suite run ended.
type SuiteResult struct {
	Name      string
	RunID     string
	State     SuiteState
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Total     int
	Passed    int
	Failed    int
	Results   []TestResult
}

// HasFailures reports whether any test failed.
func (r *SuiteResult) HasFailures() bool {
	return r.Failed > 0
}
