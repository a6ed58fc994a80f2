package suite

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Render expands template actions in base URLs and in every header and query
// value of cfg, in place. Values without "{{" are left untouched.
func Render(cfg *TestSuiteConfig) error {
	funcs := sprig.TxtFuncMap()
	errs := &ValidationErrors{}

	for i := range cfg.Bases {
		b := &cfg.Bases[i]
		key := fmt.Sprintf("base[%s]", b.Name)

		rendered, err := renderValue(funcs, key+".url", b.URL)
		if err != nil {
			errs.Add(err)
		} else {
			b.URL = rendered
		}
		renderMap(funcs, key+".header", b.Header, errs)
		renderMap(funcs, key+".query", b.Query, errs)
	}

	for i := range cfg.Auths {
		a := &cfg.Auths[i]
		key := fmt.Sprintf("auth[%s]", a.Name)
		renderMap(funcs, key+".header", a.Header, errs)
		renderMap(funcs, key+".query", a.Query, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func renderMap(funcs template.FuncMap, key string, values map[string]string, errs *ValidationErrors) {
	for name, value := range values {
		rendered, err := renderValue(funcs, key+"."+name, value)
		if err != nil {
			errs.Add(err)
			continue
		}
		values[name] = rendered
	}
}

func renderValue(funcs template.FuncMap, key, value string) (string, *ConfigurationError) {
	if !strings.Contains(value, "{{") {
		return value, nil
	}

	tmpl, err := template.New(key).Funcs(funcs).Option("missingkey=error").Parse(value)
	if err != nil {
		return "", &ConfigurationError{Kind: KindTemplate, Key: key, Message: "invalid template", Err: err}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, nil); err != nil {
		return "", &ConfigurationError{Kind: KindTemplate, Key: key, Message: "template execution failed", Err: err}
	}
	return out.String(), nil
}
