// Package logging provides subsystem-tagged diagnostic logging for patr.
//
// The package is a thin layer over Go's standard slog package. Every entry
// carries a subsystem attribute so diagnostics from the suite loader, the
// request executor and the runner can be told apart.
//
// Diagnostics are separate from test reporting: the pass/fail lines and the
// optional log file are written by internal/report, while this package only
// carries developer-facing detail (resolved requests, mismatch paths,
// transport errors). The CLI routes diagnostics to stderr when --debug is set
// and discards them otherwise.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelDebug, os.Stderr)
//
//	logging.Debug("Executor", "GET %s", url)
//	logging.Warn("Runner", "test %q failed: %s", name, reason)
//	logging.Error("Suite", err, "failed to load %s", path)
//
// # Subsystems
//
//   - Suite: loading, templating and validation of suite files
//   - Executor: HTTP request execution
//   - Runner: test sequencing and verdicts
//   - Report: log file handling
package logging
