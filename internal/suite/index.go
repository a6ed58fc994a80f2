package suite

// Index provides name lookups over the bases and auth profiles of a suite.
// It is built once and never modified; when a name appears more than once
// the last entry wins.
type Index struct {
	bases map[string]BaseEnvironment
	auths map[string]AuthProfile
}

// NewIndex builds the lookup maps for cfg.
func NewIndex(cfg *TestSuiteConfig) *Index {
	idx := &Index{
		bases: make(map[string]BaseEnvironment, len(cfg.Bases)),
		auths: make(map[string]AuthProfile, len(cfg.Auths)),
	}
	for _, b := range cfg.Bases {
		idx.bases[b.Name] = b
	}
	for _, a := range cfg.Auths {
		idx.auths[a.Name] = a
	}
	return idx
}

// Base returns the base environment called name.
func (i *Index) Base(name string) (BaseEnvironment, bool) {
	b, ok := i.bases[name]
	return b, ok
}

// Auth returns the auth profile called name.
func (i *Index) Auth(name string) (AuthProfile, bool) {
	a, ok := i.auths[name]
	return a, ok
}
