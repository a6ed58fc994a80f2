// Package runner executes a contract-test suite.
//
// For every test, in configuration order and one at a time, the runner:
//
//  1. resolves the request by overlaying the test's auth profile onto its
//     base environment (Resolve),
//  2. issues a single GET with a fixed timeout and no redirect following
//     (Executor.Execute),
//  3. judges the outcome against the test's assertion (Validate), and
//  4. reports the verdict through a Reporter.
//
// Every base and auth reference is resolved before the first request is sent,
// so a suite with a dangling reference fails with a *suite.ConfigurationError
// without touching the network. Failing tests never stop the run; once all
// tests have been processed, Run returns ErrSuiteFailed if any of them failed.
package runner
