package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"patr/internal/suite"
	"patr/pkg/logging"
)

// timestampLayout is used for the Start/End log lines.
const timestampLayout = "2006-01-02 15:04:05"

// Runner sequences the tests of a suite.
type Runner struct {
	reporter Reporter
	executor RequestExecutor
	source   string
	now      func() time.Time
	newRunID func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces the default net/http Executor.
func WithExecutor(e RequestExecutor) Option {
	return func(r *Runner) {
		r.executor = e
	}
}

// WithSource names the file the suite was loaded from in the run log.
func WithSource(path string) Option {
	return func(r *Runner) {
		r.source = path
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithRunIDGenerator replaces the uuid-based run ID generator.
func WithRunIDGenerator(gen func() string) Option {
	return func(r *Runner) {
		r.newRunID = gen
	}
}

// New creates a Runner that reports to reporter.
func New(reporter Reporter, opts ...Option) *Runner {
	r := &Runner{
		reporter: reporter,
		executor: NewExecutor(),
		now:      time.Now,
		newRunID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every test of cfg in order. It returns a
// *suite.ConfigurationError, before any request is sent, if a test refers to
// an unknown base or auth profile. Otherwise all tests run and, if any
// failed, the result is returned together with ErrSuiteFailed.
func (r *Runner) Run(ctx context.Context, cfg *suite.TestSuiteConfig) (*SuiteResult, error) {
	result := &SuiteResult{
		Name:    cfg.Name,
		RunID:   r.newRunID(),
		State:   SuiteNotStarted,
		Total:   len(cfg.Tests),
		Results: make([]TestResult, len(cfg.Tests)),
	}

	idx := suite.NewIndex(cfg)
	descriptors := make([]RequestDescriptor, len(cfg.Tests))
	for i, tc := range cfg.Tests {
		d, err := ResolveTest(idx, tc)
		if err != nil {
			logging.Error("Runner", err, "Cannot resolve test %q", tc.Name)
			return result, err
		}
		descriptors[i] = d
		result.Results[i] = TestResult{Name: tc.Name, State: TestPending}
	}

	result.State = SuiteInProgress
	result.StartTime = r.now()
	r.reporter.LogLine("Start: " + result.StartTime.Format(timestampLayout))
	r.reporter.LogLine("Run ID: " + result.RunID)
	if r.source != "" {
		r.reporter.LogLine("Config File: " + r.source)
	}
	r.reporter.LogLine("Test Config: " + cfg.Name)
	r.reporter.LogLine("Run Tests!")

	for i, tc := range cfg.Tests {
		r.runTest(ctx, tc, descriptors[i], &result.Results[i])
		if result.Results[i].State == TestPassed {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	result.EndTime = r.now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.State = SuiteCompleted
	r.reporter.LogLine("End: " + result.EndTime.Format(timestampLayout))

	logging.Info("Runner", "Suite %q completed: %d passed, %d failed", cfg.Name, result.Passed, result.Failed)

	if result.HasFailures() {
		return result, fmt.Errorf("suite %q: %w", cfg.Name, ErrSuiteFailed)
	}
	return result, nil
}

func (r *Runner) runTest(ctx context.Context, tc suite.TestCase, d RequestDescriptor, tr *TestResult) {
	start := r.now()
	tr.State = TestRunning

	if s, ok := r.reporter.(TestStartReporter); ok {
		s.ReportTestStart(tc.Name)
	}

	outcome := r.executor.Execute(ctx, d, tc.Path)
	tr.StatusCode = outcome.StatusCode
	tr.Verdict = Validate(outcome, tc.Assert)
	tr.Duration = r.now().Sub(start)

	if tr.Verdict.Passed {
		tr.State = TestPassed
		r.reporter.RecordSuccess(tc.Name)
		return
	}

	tr.State = TestFailed
	logging.Warn("Runner", "Test %q failed (%s): %s", tc.Name, tr.Verdict.Reason, tr.Verdict.Detail)
	r.reporter.RecordFailure(tc.Name)
}
