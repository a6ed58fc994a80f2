package suite

// AssertionType selects how a response body is checked once the status code matched.
type AssertionType string

const (
	// AssertionNone checks the status code only.
	AssertionNone AssertionType = ""
	// AssertionJSON parses the body as JSON and matches it against Assertion.Fields.
	AssertionJSON AssertionType = "json"
)

// Valid reports whether t is a known assertion type.
func (t AssertionType) Valid() bool {
	return t == AssertionNone || t == AssertionJSON
}

// TestSuiteConfig is a parsed suite file. It is built once per run and must
// not be modified afterwards.
type TestSuiteConfig struct {
	Name  string            `json:"name" yaml:"name"`
	Bases []BaseEnvironment `json:"base" yaml:"base"`
	Auths []AuthProfile     `json:"auth" yaml:"auth"`
	Tests []TestCase        `json:"tests" yaml:"tests"`
}

// BaseEnvironment is a named HTTP target with default headers and query parameters.
type BaseEnvironment struct {
	Name   string            `json:"name" yaml:"name"`
	URL    string            `json:"url" yaml:"url"`
	Header map[string]string `json:"header,omitempty" yaml:"header,omitempty"`
	Query  map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
}

// AuthProfile is a named set of header and query overrides layered on top of a base.
type AuthProfile struct {
	Name   string            `json:"name" yaml:"name"`
	Header map[string]string `json:"header,omitempty" yaml:"header,omitempty"`
	Query  map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
}

// TestCase is a single request and the assertion its response must satisfy.
type TestCase struct {
	Name   string    `json:"name" yaml:"name"`
	Base   string    `json:"base" yaml:"base"`
	Auth   string    `json:"auth" yaml:"auth"`
	Path   string    `json:"path" yaml:"path"`
	Assert Assertion `json:"assert" yaml:"assert"`
}

// Assertion describes the expected status code and, for JSON assertions, the
// required shape of the body.
type Assertion struct {
	Code   int           `json:"code" yaml:"code"`
	Type   AssertionType `json:"type,omitempty" yaml:"type,omitempty"`
	Fields *RequiredSpec `json:"fields,omitempty" yaml:"fields,omitempty"`
}
