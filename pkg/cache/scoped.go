package cache

// ScopedKeyer namespaces the keys of another Keyer, so several pagerank
// deployments (or a CLI and a server) can share one Redis database or
// cache directory without reading each other's rankings.
//
//	keyer := NewScopedKeyer(nil, "pagerank:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer prefixes every key produced by inner, which defaults to
// [DefaultKeyer]. An empty prefix returns inner unchanged.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	if prefix == "" {
		return inner
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// Prefix returns the namespace prepended to every key.
func (k *ScopedKeyer) Prefix() string { return k.prefix }

func (k *ScopedKeyer) ResultKey(graphHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(graphHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(resultHash, opts)
}
