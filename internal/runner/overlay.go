package runner

import (
	"fmt"

	"patr/internal/suite"
)

// Resolve overlays auth onto base. Base headers and query parameters are
// copied first, then auth entries overwrite any entry with the same key.
// Neither input is modified.
func Resolve(base suite.BaseEnvironment, auth suite.AuthProfile) RequestDescriptor {
	d := RequestDescriptor{
		URL:     base.URL,
		Headers: make(map[string]string, len(base.Header)+len(auth.Header)),
		Query:   make(map[string]string, len(base.Query)+len(auth.Query)),
	}

	for k, v := range base.Header {
		d.Headers[k] = v
	}
	for k, v := range base.Query {
		d.Query[k] = v
	}
	for k, v := range auth.Header {
		d.Headers[k] = v
	}
	for k, v := range auth.Query {
		d.Query[k] = v
	}

	return d
}

// ResolveTest looks up the base and auth profile tc refers to and resolves
// them. An unknown name yields a *suite.ConfigurationError naming it.
func ResolveTest(idx *suite.Index, tc suite.TestCase) (RequestDescriptor, error) {
	key := fmt.Sprintf("tests[%s]", tc.Name)

	base, ok := idx.Base(tc.Base)
	if !ok {
		return RequestDescriptor{}, suite.NewReferenceError(key+".base", "base", tc.Base)
	}
	auth, ok := idx.Auth(tc.Auth)
	if !ok {
		return RequestDescriptor{}, suite.NewReferenceError(key+".auth", "auth", tc.Auth)
	}

	return Resolve(base, auth), nil
}
