package runner

import (
	"errors"
	"fmt"

	"patr/internal/contract"
	"patr/internal/suite"
)

// FailureReason says which check a failed test did not pass.
type FailureReason string

const (
	ReasonNone   FailureReason = ""
	ReasonStatus FailureReason = "status"
	ReasonShape  FailureReason = "shape"
	ReasonParse  FailureReason = "parse"
	ReasonFields FailureReason = "fields"
)

// Verdict is the judgement on one test.
type Verdict struct {
	Passed bool
	Reason FailureReason
	Detail string
}

func pass() Verdict {
	return Verdict{Passed: true}
}

func fail(reason FailureReason, format string, args ...interface{}) Verdict {
	return Verdict{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Validate judges outcome against assertion. The status code is checked
// first and a mismatch fails without looking at the body. For JSON
// assertions the body must look like an object or array before it is parsed
// and matched against assertion.Fields.
func Validate(outcome RequestOutcome, assertion suite.Assertion) Verdict {
	if outcome.StatusCode != assertion.Code {
		if outcome.TransportFailed {
			return fail(ReasonStatus, "expected status %d, got %d (transport error: %v)",
				assertion.Code, outcome.StatusCode, outcome.Err)
		}
		return fail(ReasonStatus, "expected status %d, got %d", assertion.Code, outcome.StatusCode)
	}

	if assertion.Type != suite.AssertionJSON {
		return pass()
	}

	if !contract.LooksLikeContainer(outcome.Body) {
		return fail(ReasonShape, "body is not a JSON object or array")
	}

	value, err := contract.Parse(outcome.Body)
	if err != nil {
		return fail(ReasonParse, "%v", err)
	}

	if err := contract.Match(assertion.Fields, value); err != nil {
		var mismatch *contract.MismatchError
		if errors.As(err, &mismatch) {
			return fail(ReasonFields, "%s", mismatch.Error())
		}
		return fail(ReasonFields, "%v", err)
	}

	return pass()
}
