package ports

// Cache is the process-wide entity cache. Entries are never evicted.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Len() int
}
