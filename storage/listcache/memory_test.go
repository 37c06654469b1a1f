package listcache

import (
	"testing"

	"github.com/meucampus/planner/core"
)

func TestMemory(t *testing.T) {
	cache := NewMemory()

	page1 := core.ListKey{Kind: "teachers", Page: 1, PerPage: 10}
	page2 := core.ListKey{Kind: "teachers", Page: 2, PerPage: 10}
	searched := core.ListKey{Kind: "teachers", Page: 1, PerPage: 10, Search: "ana"}
	all := core.ListKey{Kind: "teachers"}
	other := core.ListKey{Kind: "subjects", Page: 1, PerPage: 10}

	for i, key := range []core.ListKey{page1, page2, searched, all, other} {
		cache.Set(key, i)
	}
	if val, ok := cache.Get(page1); !ok || val != 0 {
		t.Errorf("Get(page1) = %v, %v", val, ok)
	}
	if _, ok := cache.Get(core.ListKey{Kind: "teachers", Page: 3, PerPage: 10}); ok {
		t.Error("Get() hit for a key never set")
	}

	// invalidation sweeps every teachers entry, paginated or not
	cache.Invalidate("teachers")
	for _, key := range []core.ListKey{page1, page2, searched, all} {
		if _, ok := cache.Get(key); ok {
			t.Errorf("Get(%+v) hit after Invalidate", key)
		}
	}
	if _, ok := cache.Get(other); !ok {
		t.Error("Invalidate(teachers) dropped a subjects entry")
	}
}
