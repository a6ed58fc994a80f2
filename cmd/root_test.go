package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patr/internal/runner"
	"patr/internal/suite"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/users":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[{"id": 1, "name": "Ann"}, {"id": 2, "name": "Bob"}]`)
		case "/users/1":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id": 1, "name": "Ann", "active": true}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeSuite(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func suiteJSON(url string, tests string) string {
	return `{
  "name": "Users API",
  "base": [{"name": "local", "url": "` + url + `"}],
  "auth": [
    {"name": "anon"},
    {"name": "user", "header": {"Authorization": "Bearer secret"}}
  ],
  "tests": [` + tests + `]
}`
}

const passingTests = `
    {"name": "list users", "base": "local", "auth": "user", "path": "/users",
     "assert": {"code": 200, "type": "json", "fields": [{"id": "integer", "name": "string"}]}},
    {"name": "get user", "base": "local", "auth": "user", "path": "/users/1",
     "assert": {"code": 200, "type": "json", "fields": {"id": "integer", "active": "boolean"}}},
    {"name": "anonymous rejected", "base": "local", "auth": "anon", "path": "/users",
     "assert": {"code": 401}}`

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	text.DisableColors()
	t.Cleanup(text.EnableColors)

	var out, errOut bytes.Buffer
	code := execute(context.Background(), append(args, "--no-color"), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	assert.Equal(t, "patr", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)
	assert.True(t, root.SilenceUsage)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["version"])

	cfg := root.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "c", cfg.Shorthand)
	assert.Equal(t, suite.DefaultConfigPath, cfg.DefValue)

	out := root.Flags().Lookup("output")
	require.NotNil(t, out)
	assert.Equal(t, "o", out.Shorthand)
}

func TestExecute_AllPass(t *testing.T) {
	srv := newAPIServer(t)
	path := writeSuite(t, "suite.json", suiteJSON(srv.URL, passingTests))

	code, out, errOut := run(t, "-c", path)

	assert.Equal(t, ExitCodeSuccess, code, errOut)
	assert.Contains(t, out, "LOG: Test Config: Users API\n")
	assert.Contains(t, out, "LOG: Config File: "+path+"\n")
	assert.Contains(t, out, "[ OK ] list users\n")
	assert.Contains(t, out, "[ OK ] get user\n")
	assert.Contains(t, out, "[ OK ] anonymous rejected\n")
	assert.NotContains(t, out, "[FAIL]")
	assert.Empty(t, errOut)
}

func TestExecute_FailingTestExitsOneAndRunsTheRest(t *testing.T) {
	srv := newAPIServer(t)
	tests := `
    {"name": "wrong type", "base": "local", "auth": "user", "path": "/users/1",
     "assert": {"code": 200, "type": "json", "fields": {"id": "string"}}},
    {"name": "still runs", "base": "local", "auth": "user", "path": "/users/1",
     "assert": {"code": 200}}`
	path := writeSuite(t, "suite.json", suiteJSON(srv.URL, tests))

	code, out, errOut := run(t, "--config", path)

	assert.Equal(t, ExitCodeError, code)
	assert.Contains(t, out, "[FAIL] wrong type\n")
	assert.Contains(t, out, "[ OK ] still runs\n")
	assert.True(t, strings.Index(out, "wrong type") < strings.Index(out, "still runs"))
	assert.Contains(t, out, "LOG: End: ")
	assert.Empty(t, errOut)
}

func TestExecute_ZeroTestsExitsZero(t *testing.T) {
	path := writeSuite(t, "suite.json", suiteJSON("http://127.0.0.1:1", ""))

	code, out, _ := run(t, "-c", path)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, out, "LOG: Run Tests!\n")
}

func TestExecute_MissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	code, out, errOut := run(t, "-c", missing)

	assert.Equal(t, ExitCodeError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "configuration file not found")
	assert.Contains(t, errOut, missing)
}

func TestExecute_InvalidConfigReportsEveryProblem(t *testing.T) {
	tests := `
    {"name": "a", "base": "prod", "auth": "anon", "path": "/", "assert": {"code": 200}},
    {"name": "b", "base": "local", "auth": "root", "path": "/", "assert": {"code": 200}}`
	path := writeSuite(t, "suite.json", suiteJSON("http://127.0.0.1:1", tests))

	code, out, errOut := run(t, "-c", path)

	assert.Equal(t, ExitCodeError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Suite validation failed (2 errors)")
	assert.Contains(t, errOut, `unknown base "prod"`)
	assert.Contains(t, errOut, `unknown auth "root"`)
}

func TestExecute_OutputFileReplacesPreviousLog(t *testing.T) {
	srv := newAPIServer(t)
	path := writeSuite(t, "suite.json", suiteJSON(srv.URL, passingTests))
	logPath := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(logPath, []byte("stale\n"), 0o644))

	code, _, _ := run(t, "-c", path, "-o", logPath)
	require.Equal(t, ExitCodeSuccess, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(data)
	assert.NotContains(t, log, "stale")
	assert.True(t, strings.HasPrefix(log, "LOG: Start: "))
	assert.Contains(t, log, "[ OK ] list users\n")
	assert.True(t, strings.HasSuffix(log, "\n"))
}

func TestExecute_OutputFileRemovedEvenWhenConfigIsMissing(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(logPath, []byte("stale\n"), 0o644))

	code, _, _ := run(t, "-c", filepath.Join(t.TempDir(), "missing.json"), "-o", logPath)

	assert.Equal(t, ExitCodeError, code)
	_, err := os.Stat(logPath)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExecute_HelpExitsOne(t *testing.T) {
	for _, args := range [][]string{
		{"-h"},
		{"--help"},
		{"-c", "whatever.json", "--help"},
		{"list", "-h"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, out, _ := run(t, args...)
			assert.Equal(t, ExitCodeError, code)
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestExecute_UnknownFlag(t *testing.T) {
	code, _, errOut := run(t, "--bogus")

	assert.Equal(t, ExitCodeError, code)
	assert.Contains(t, errOut, "unknown flag")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCodeSuccess, getExitCode(nil))
	assert.Equal(t, ExitCodeError, getExitCode(runner.ErrSuiteFailed))
	assert.Equal(t, ExitCodeError, getExitCode(&suite.ConfigurationError{Kind: suite.KindNotFound}))
}

func TestPrintError(t *testing.T) {
	text.DisableColors()
	t.Cleanup(text.EnableColors)

	var buf bytes.Buffer
	printError(&buf, fmt.Errorf("suite %q: %w", "x", runner.ErrSuiteFailed))
	assert.Empty(t, buf.String())

	printError(&buf, &suite.ConfigurationError{Kind: suite.KindParse, Path: "a.json", Message: "failed to decode suite"})
	assert.Equal(t, "Error: a.json: failed to decode suite\n", buf.String())
}
