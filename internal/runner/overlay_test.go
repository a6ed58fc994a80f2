package runner

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patr/internal/suite"
)

func TestResolve_AuthOverridesBase(t *testing.T) {
	base := suite.BaseEnvironment{
		Name:   "local",
		URL:    "http://localhost",
		Header: map[string]string{"A": "1"},
		Query:  map[string]string{"v": "1", "lang": "en"},
	}
	auth := suite.AuthProfile{
		Name:   "user",
		Header: map[string]string{"A": "2", "B": "3"},
		Query:  map[string]string{"v": "2"},
	}

	d := Resolve(base, auth)

	assert.Equal(t, "http://localhost", d.URL)
	assert.Equal(t, map[string]string{"A": "2", "B": "3"}, d.Headers)
	assert.Equal(t, map[string]string{"v": "2", "lang": "en"}, d.Query)

	// inputs are left alone
	assert.Equal(t, map[string]string{"A": "1"}, base.Header)
	assert.Equal(t, map[string]string{"v": "1", "lang": "en"}, base.Query)
}

func TestResolve_NilMaps(t *testing.T) {
	d := Resolve(suite.BaseEnvironment{URL: "http://x"}, suite.AuthProfile{})

	assert.NotNil(t, d.Headers)
	assert.NotNil(t, d.Query)
	assert.Empty(t, d.Headers)
	assert.Empty(t, d.Query)
}

func TestResolveTest_UnknownReferences(t *testing.T) {
	idx := suite.NewIndex(&suite.TestSuiteConfig{
		Bases: []suite.BaseEnvironment{{Name: "local", URL: "http://x"}},
		Auths: []suite.AuthProfile{{Name: "anon"}},
	})

	_, err := ResolveTest(idx, suite.TestCase{Name: "t", Base: "prod", Auth: "anon"})
	var ce *suite.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, suite.KindReference, ce.Kind)
	assert.Contains(t, ce.Error(), `unknown base "prod"`)

	_, err = ResolveTest(idx, suite.TestCase{Name: "t", Base: "local", Auth: "root"})
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Error(), `unknown auth "root"`)

	d, err := ResolveTest(idx, suite.TestCase{Name: "t", Base: "local", Auth: "anon"})
	require.NoError(t, err)
	assert.Equal(t, "http://x", d.URL)
}

func TestResolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genMap := gen.MapOf(gen.AlphaString(), gen.AlphaString())

	properties.Property("auth wins on every shared header key", prop.ForAll(
		func(baseHeader, authHeader map[string]string) bool {
			d := Resolve(suite.BaseEnvironment{Header: baseHeader}, suite.AuthProfile{Header: authHeader})
			for k, v := range authHeader {
				if d.Headers[k] != v {
					return false
				}
			}
			return true
		},
		genMap, genMap,
	))

	properties.Property("base keys absent from auth are kept", prop.ForAll(
		func(baseQuery, authQuery map[string]string) bool {
			d := Resolve(suite.BaseEnvironment{Query: baseQuery}, suite.AuthProfile{Query: authQuery})
			for k, v := range baseQuery {
				if _, overridden := authQuery[k]; overridden {
					continue
				}
				if d.Query[k] != v {
					return false
				}
			}
			return len(d.Query) <= len(baseQuery)+len(authQuery)
		},
		genMap, genMap,
	))

	properties.TestingRun(t)
}
