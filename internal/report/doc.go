// Package report turns the runner's events into user-facing output.
//
// Three pieces are provided:
//   - Console writes coloured lines (and, on a terminal, a spinner while a
//     request is in flight) to an io.Writer.
//   - LogFile appends the same lines, without colour, to a file. The file is
//     opened, appended to and closed on every write.
//   - Reporter fans runner events out to both and remembers whether any test
//     failed.
//
// The line format is shared by both sinks:
//
//	LOG: <message>
//	[ OK ] <test name>
//	[FAIL] <test name>
//
// WriteTestTable renders the tests of a suite as a table for `patr list`.
package report
