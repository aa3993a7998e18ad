//go:build !integration

package benchmark

import "testing"

func testCPUTable() *Table {
	return NewTable([]Row{
		{DeviceName: "Intel Core i9-13900H", MedianScore: fp(30000), Benchmarks: 100},
		{DeviceName: "AMD Ryzen 7 7840HS", MedianScore: fp(25000), Benchmarks: 80},
		{DeviceName: "Intel Core i5-1335U", MedianScore: fp(14000), Benchmarks: 60},
	}, DeviceCPU, true)
}

func testMatcher() *Matcher {
	cfg := DefaultMatcherConfig()
	cfg.ScaleMethod = ScaleMinMax
	return NewMatcher(testCPUTable(), nil, cfg)
}

func TestLookupExactRaw(t *testing.T) {
	m := testMatcher()

	raw, kind, ok := m.Lookup("Intel Core I9-13900H", DeviceCPU)
	if !ok || kind != MatchExact || raw != 30000 {
		t.Errorf("got (%v, %v, %v), want (30000, exact, true)", raw, kind, ok)
	}
}

func TestLookupNormalized(t *testing.T) {
	m := testMatcher()

	// Extra marketing words break the raw match but normalize away.
	raw, kind, ok := m.Lookup("Intel Core i9 13900H Processor", DeviceCPU)
	if !ok || kind != MatchNormalized || raw != 30000 {
		t.Errorf("got (%v, %v, %v), want (30000, normalized, true)", raw, kind, ok)
	}
}

func TestLookupContains(t *testing.T) {
	m := testMatcher()

	raw, kind, ok := m.Lookup("Gaming laptop featuring Intel Core i9-13900H inside", DeviceCPU)
	if !ok || kind != MatchContains || raw != 30000 {
		t.Errorf("got (%v, %v, %v), want (30000, contains, true)", raw, kind, ok)
	}
}

func TestLookupFuzzy(t *testing.T) {
	m := testMatcher()

	// Token order is scrambled so substring containment cannot fire, but
	// the token sets are identical.
	raw, kind, ok := m.Lookup("Ryzen 7840HS 7 CPU", DeviceCPU)
	if !ok || kind != MatchFuzzy || raw != 25000 {
		t.Errorf("got (%v, %v, %v), want (25000, fuzzy, true)", raw, kind, ok)
	}
}

func TestLookupNoMatch(t *testing.T) {
	m := testMatcher()

	_, kind, ok := m.Lookup("Qualcomm Snapdragon X Elite", DeviceCPU)
	if ok || kind != MatchNone {
		t.Errorf("got (%v, %v), want (none, false)", kind, ok)
	}
}

func TestLookupFuzzyDisabled(t *testing.T) {
	cfg := DefaultMatcherConfig()
	cfg.FuzzyEnabled = false
	m := NewMatcher(testCPUTable(), nil, cfg)

	if _, kind, ok := m.Lookup("Ryzen 7840HS 7 CPU", DeviceCPU); ok || kind != MatchNone {
		t.Errorf("fuzzy disabled: got (%v, %v), want (none, false)", kind, ok)
	}
}

func TestLookupDisabledMatcher(t *testing.T) {
	cfg := DefaultMatcherConfig()
	cfg.Enabled = false
	m := NewMatcher(testCPUTable(), nil, cfg)

	if _, _, ok := m.Lookup("Intel Core i9-13900H", DeviceCPU); ok {
		t.Error("disabled matcher returned a match")
	}
}

func TestLookupBlankAndNilTables(t *testing.T) {
	m := testMatcher()
	if _, _, ok := m.Lookup("   ", DeviceCPU); ok {
		t.Error("blank name returned a match")
	}

	// The GPU table was nil at construction; lookups must not panic.
	if _, _, ok := m.Lookup("NVIDIA GeForce RTX 4070 Laptop GPU", DeviceGPU); ok {
		t.Error("empty gpu table returned a match")
	}
}

func TestLookupCachesMisses(t *testing.T) {
	m := testMatcher()

	for i := 0; i < 3; i++ {
		m.Lookup("Qualcomm Snapdragon X Elite", DeviceCPU)
	}
	if got := m.cache.len(); got != 1 {
		t.Errorf("cache entries = %d, want 1 (misses memoized once)", got)
	}
}

func TestScore100ClampsToBounds(t *testing.T) {
	// Two-entry table: p5/p95 interpolate inside [14000, 30000], so the
	// extremes clamp to 0 and 100.
	tab := NewTable([]Row{
		{DeviceName: "Intel Core i9-13900H", MedianScore: fp(30000), Benchmarks: 100},
		{DeviceName: "Intel Core i5-1335U", MedianScore: fp(14000), Benchmarks: 60},
	}, DeviceCPU, true)

	cfg := DefaultMatcherConfig()
	cfg.ScaleMethod = ScaleMinMax
	m := NewMatcher(tab, nil, cfg)

	hi, _, ok := m.Score100("Intel Core i9-13900H", DeviceCPU)
	if !ok || hi != 100 {
		t.Errorf("top score = (%v, %v), want (100, true)", hi, ok)
	}

	lo, _, ok := m.Score100("Intel Core i5-1335U", DeviceCPU)
	if !ok || lo != 0 {
		t.Errorf("bottom score = (%v, %v), want (0, true)", lo, ok)
	}
}
