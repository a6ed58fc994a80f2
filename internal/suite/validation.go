package suite

import (
	"fmt"
)

// Validate checks that cfg can be run: every test references a known base
// and auth profile, assertion types and field type tags are known, and every
// base has a URL. All problems are returned together as *ValidationErrors.
func Validate(cfg *TestSuiteConfig) error {
	errs := &ValidationErrors{}
	idx := NewIndex(cfg)

	for i, b := range cfg.Bases {
		key := fmt.Sprintf("base[%d]", i)
		if b.Name == "" {
			errs.Add(invalid(key+".name", "base name is required"))
		}
		if b.URL == "" {
			errs.Add(invalid(key+".url", fmt.Sprintf("base %q has no url", b.Name)))
		}
	}

	for i, a := range cfg.Auths {
		if a.Name == "" {
			errs.Add(invalid(fmt.Sprintf("auth[%d].name", i), "auth name is required"))
		}
	}

	for i, tc := range cfg.Tests {
		key := fmt.Sprintf("tests[%d]", i)
		if _, ok := idx.Base(tc.Base); !ok {
			errs.Add(NewReferenceError(key+".base", "base", tc.Base))
		}
		if _, ok := idx.Auth(tc.Auth); !ok {
			errs.Add(NewReferenceError(key+".auth", "auth", tc.Auth))
		}
		if !tc.Assert.Type.Valid() {
			errs.Add(invalid(key+".assert.type", fmt.Sprintf("unknown assertion type %q", tc.Assert.Type)))
		}
		validateSpec(key+".assert.fields", tc.Assert.Fields, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateSpec(key string, spec *RequiredSpec, errs *ValidationErrors) {
	if spec == nil {
		return
	}
	for _, f := range spec.Fields {
		fieldKey := key + "." + f.Name
		switch {
		case f.Nested != nil && f.Type != "":
			errs.Add(invalid(fieldKey, "field cannot have both a type and a nested spec"))
		case f.Nested != nil:
			validateSpec(fieldKey, f.Nested, errs)
		case !f.Type.Valid():
			errs.Add(invalid(fieldKey, fmt.Sprintf("unknown type %q (want string, integer, double, boolean, array or null)", f.Type)))
		}
	}
}

func invalid(key, message string) *ConfigurationError {
	return &ConfigurationError{Kind: KindInvalid, Key: key, Message: message}
}
