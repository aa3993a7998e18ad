//go:build !integration

package benchmark

import (
	"fmt"
	"sync"
	"testing"
)

func TestLookupCacheBound(t *testing.T) {
	c := newLookupCache(2)

	c.put("a", lookupResult{raw: 1, kind: MatchExact})
	c.put("b", lookupResult{raw: 2, kind: MatchExact})
	// Third insert trips the bound: the whole generation is dropped first.
	c.put("c", lookupResult{raw: 3, kind: MatchExact})

	if got := c.len(); got != 1 {
		t.Errorf("len = %d, want 1 after generation drop", got)
	}
	if _, ok := c.get("a"); ok {
		t.Error("evicted key still present")
	}
	if res, ok := c.get("c"); !ok || res.raw != 3 {
		t.Errorf("get(c) = (%v, %v), want (3, true)", res, ok)
	}
}

func TestLookupCacheConcurrent(t *testing.T) {
	c := newLookupCache(64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", (n+j)%100)
				c.put(key, lookupResult{raw: float64(j), kind: MatchFuzzy})
				c.get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.len() > 64 {
		t.Errorf("len = %d, exceeds bound 64", c.len())
	}
}
