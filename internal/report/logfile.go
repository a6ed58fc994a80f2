package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LogFile appends run events to a file. No handle is kept between writes.
type LogFile struct {
	path string
}

// NewLogFile returns a LogFile for path. Nothing is touched on disk until
// Reset or a write.
func NewLogFile(path string) *LogFile {
	return &LogFile{path: path}
}

// Path returns the file the log is written to.
func (f *LogFile) Path() string {
	return f.path
}

// Reset removes any file left at the path by an earlier run.
func (f *LogFile) Reset() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing log file %s: %w", f.path, err)
	}
	return nil
}

// LogLine appends "LOG: <text>".
func (f *LogFile) LogLine(msg string) error {
	return f.append(logLine(msg, false))
}

// RecordSuccess appends "[ OK ] <name>".
func (f *LogFile) RecordSuccess(name string) error {
	return f.append(successLine(name, false))
}

// RecordFailure appends "[FAIL] <name>".
func (f *LogFile) RecordFailure(name string) error {
	return f.append(failureLine(name, false))
}

func (f *LogFile) append(line string) (err error) {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", f.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing log file %s: %w", f.path, cerr)
		}
	}()

	if _, err := fmt.Fprintln(file, line); err != nil {
		return fmt.Errorf("writing log file %s: %w", f.path, err)
	}
	return nil
}
