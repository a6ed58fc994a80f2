// Package suite holds the contract-test suite model and everything needed to
// turn a suite file on disk into a validated, read-only TestSuiteConfig.
//
// A suite file names base environments (an HTTP target plus default headers
// and query parameters), auth profiles (header/query overrides) and tests.
// Each test references one base and one auth profile by name, a request path,
// and an assertion on the response.
//
// # File formats
//
// Files ending in .yaml or .yml are decoded with gopkg.in/yaml.v3. Everything
// else is decoded as JSON. Both formats use the same keys:
//
//	{
//	  "name": "users api",
//	  "base": [{"name": "prod", "url": "https://api.example.com", "header": {"Accept": "application/json"}}],
//	  "auth": [{"name": "user", "header": {"Authorization": "Bearer {{ env \"API_TOKEN\" }}"}}],
//	  "tests": [{
//	    "name": "get user", "base": "prod", "auth": "user", "path": "/users/1",
//	    "assert": {"code": 200, "type": "json", "fields": {"id": "integer", "profile": {"name": "string"}}}
//	  }]
//	}
//
// The order of keys inside "fields" is kept; see RequiredSpec.
//
// # Templating
//
// Base URLs and every header and query value may contain text/template
// actions. The sprig function map is available, so secrets can be pulled from
// the environment instead of being committed with the suite.
//
// # Validation
//
// Load validates the whole suite before returning it: test references to
// unknown bases or auth profiles, unknown assertion types, unknown field type
// tags and empty base URLs are all reported together as ValidationErrors.
package suite
