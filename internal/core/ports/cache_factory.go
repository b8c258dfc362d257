package ports

// CacheFactory builds a workspace-rooted Cache and InputHasher pair once the
// workspace root is known. Construction is deferred behind a factory func
// (rather than a singleton) because the root is only discovered by the
// workspace loader at run time, not at dependency-wiring time.
type CacheFactory func(root string) (Cache, InputHasher, error)
