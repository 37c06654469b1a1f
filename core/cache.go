package core

// ListKey identifies one cached page of a server-owned collection.
// The zero Page/PerPage is used for unpaginated "/all" lists.
type ListKey struct {
	Kind    string
	Page    int
	PerPage int
	Search  string
}

// ListCache is a transient, invalidate-on-write cache for entity collections.
// Writes to an entity invalidate its whole Kind; there is no row-level invalidation.
type ListCache interface {
	Get(key ListKey) (interface{}, bool)
	Set(key ListKey, val interface{})
	Invalidate(kind string)
}

// NopListCache disables caching; every read goes to the server.
type NopListCache struct{}

var _ ListCache = (*NopListCache)(nil)

func (NopListCache) Get(ListKey) (interface{}, bool) { return nil, false }
func (NopListCache) Set(ListKey, interface{})        {}
func (NopListCache) Invalidate(string)               {}
