package cache

// ScopedKeyer wraps a Keyer with a prefix, for isolating cache namespaces
// between concurrent callers of the same Redis instance (e.g. one prefix
// per httpapi tenant, or per CLI invocation in tests).
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix prepended to every generated
// key. A nil inner defaults to NewDefaultKeyer().
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// AbstractionKey implements Keyer.
func (k *ScopedKeyer) AbstractionKey(taskHash string, pattern []int) string {
	return k.prefix + k.inner.AbstractionKey(taskHash, pattern)
}

// LandmarkGraphKey implements Keyer.
func (k *ScopedKeyer) LandmarkGraphKey(taskHash, configHash string, stateHash uint64) string {
	return k.prefix + k.inner.LandmarkGraphKey(taskHash, configHash, stateHash)
}
