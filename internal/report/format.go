package report

import "github.com/jedib0t/go-pretty/v6/text"

const (
	logPrefix = "LOG: "
	okTag     = "OK"
	failTag   = "FAIL"
)

// logLine formats a suite-level message. colour is applied to the message only.
func logLine(msg string, colour bool) string {
	if colour {
		msg = text.FgYellow.Sprint(msg)
	}
	return logPrefix + msg
}

// successLine formats a passed test; the tag is six characters wide.
func successLine(name string, colour bool) string {
	tag := okTag
	if colour {
		tag = text.FgGreen.Sprint(tag)
	}
	return "[ " + tag + " ] " + name
}

// failureLine formats a failed test, padded like successLine.
func failureLine(name string, colour bool) string {
	tag := failTag
	if colour {
		tag = text.FgRed.Sprint(tag)
	}
	return "[" + tag + "] " + name
}
