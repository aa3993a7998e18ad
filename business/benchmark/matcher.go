package benchmark

import (
	"strings"

	"laptopMart/pkg/metrics"
)

type MatchKind string

const (
	MatchExact      MatchKind = "exact"
	MatchNormalized MatchKind = "normalized"
	MatchContains   MatchKind = "contains"
	MatchFuzzy      MatchKind = "fuzzy"
	MatchNone       MatchKind = "none"
)

type MatcherConfig struct {
	// Enabled gates all table lookups; disabled means rule-only scoring.
	Enabled bool
	// ScaleMethod is "logminmax" or "minmax".
	ScaleMethod string
	// FuzzyEnabled turns on the token-Jaccard fallback tier. Applied
	// uniformly to batch and request-time lookups so both score paths
	// stay identical.
	FuzzyEnabled   bool
	FuzzyThreshold float64
	// CacheSize bounds the memoized lookup cache.
	CacheSize int
}

func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		Enabled:        true,
		ScaleMethod:    ScaleLogMinMax,
		FuzzyEnabled:   true,
		FuzzyThreshold: 0.60,
		CacheSize:      8192,
	}
}

// Matcher resolves free-text device names against the benchmark tables.
// Immutable after construction apart from its bounded lookup cache, so it is
// safe for concurrent use.
type Matcher struct {
	cpu   *Table
	gpu   *Table
	cfg   MatcherConfig
	cache *lookupCache
}

func NewMatcher(cpu, gpu *Table, cfg MatcherConfig) *Matcher {
	if cpu == nil {
		cpu = emptyTable(DeviceCPU)
	}
	if gpu == nil {
		gpu = emptyTable(DeviceGPU)
	}
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = 0.60
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 8192
	}
	return &Matcher{
		cpu:   cpu,
		gpu:   gpu,
		cfg:   cfg,
		cache: newLookupCache(cfg.CacheSize),
	}
}

func (m *Matcher) Enabled() bool {
	return m.cfg.Enabled
}

func (m *Matcher) TableLen(device Device) int {
	return m.table(device).Len()
}

func (m *Matcher) table(device Device) *Table {
	if device == DeviceCPU {
		return m.cpu
	}
	return m.gpu
}

// Lookup returns the raw benchmark score for a device name. ok is false when
// no tier matched; that is a signal to use the rule fallback, not an error.
func (m *Matcher) Lookup(name string, device Device) (raw float64, kind MatchKind, ok bool) {
	if !m.cfg.Enabled || strings.TrimSpace(name) == "" {
		return 0, MatchNone, false
	}

	cacheKey := device.String() + "|" + name
	if hit, found := m.cache.get(cacheKey); found {
		return hit.raw, hit.kind, hit.kind != MatchNone
	}

	raw, kind = m.lookupUncached(name, device)
	m.cache.put(cacheKey, lookupResult{raw: raw, kind: kind})
	metrics.BenchmarkLookups.WithLabelValues(device.String(), string(kind)).Inc()

	return raw, kind, kind != MatchNone
}

func (m *Matcher) lookupUncached(name string, device Device) (float64, MatchKind) {
	t := m.table(device)
	if t.Len() == 0 {
		return 0, MatchNone
	}

	// 1) exact raw lowercased name
	key := strings.ToLower(strings.TrimSpace(name))
	if score, ok := t.exact[key]; ok {
		return score, MatchExact
	}

	// 2) exact normalized name
	nk := Normalize(key)
	if nk != "" {
		if score, ok := t.norm[nk]; ok {
			return score, MatchNormalized
		}
	}

	// 3) substring containment, either direction
	if nk != "" {
		for _, e := range t.entries {
			if e.norm == "" {
				continue
			}
			if strings.Contains(e.norm, nk) || strings.Contains(nk, e.norm) {
				return e.score, MatchContains
			}
		}
	}

	// 4) token-set Jaccard against every entry
	if m.cfg.FuzzyEnabled {
		simplify := SimplifyCPU
		if device == DeviceGPU {
			simplify = SimplifyGPU
		}
		qTokens := tokenSet(simplify(name))

		bestSim := 0.0
		bestScore := 0.0
		for _, e := range t.entries {
			sim := jaccard(qTokens, e.tokens)
			if sim > bestSim {
				bestSim = sim
				bestScore = e.score
			}
		}
		if bestSim >= m.cfg.FuzzyThreshold {
			return bestScore, MatchFuzzy
		}
	}

	return 0, MatchNone
}

// Score100 looks the name up and rescales the raw score to 0-100 against the
// table's percentile bounds.
func (m *Matcher) Score100(name string, device Device) (score float64, kind MatchKind, ok bool) {
	raw, kind, ok := m.Lookup(name, device)
	if !ok {
		return 0, kind, false
	}
	lo, hi := m.table(device).Bounds()
	return ScaleTo100(raw, lo, hi, m.cfg.ScaleMethod), kind, true
}
