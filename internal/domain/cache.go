package domain

type CacheKind string

const (
	CacheKindPost    CacheKind = "post"
	CacheKindAccount CacheKind = "account"
	CacheKindHandle  CacheKind = "handle"
)

// CacheKey builds the namespaced "kind/id" key shared by every cache writer.
func CacheKey(kind CacheKind, id string) string {
	return string(kind) + "/" + id
}
