package benchmark

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

type Device int

const (
	DeviceCPU Device = iota
	DeviceGPU
)

func (d Device) String() string {
	if d == DeviceCPU {
		return "cpu"
	}
	return "gpu"
}

// Default percentile bounds used when a table is missing or empty, so the
// rescaler still has a sane domain.
const (
	defaultCPULow    = 1000.0
	defaultCPUSpread = 20000.0
	defaultGPULow    = 1000.0
	defaultGPUSpread = 30000.0
)

type tableEntry struct {
	nameLC string
	norm   string
	tokens map[string]struct{}
	score  float64
	count  int
}

// Table is an immutable name->score reference for one device kind, built
// once at startup. Entries keep file order so containment and fuzzy walks
// are deterministic.
type Table struct {
	device  Device
	entries []tableEntry
	exact   map[string]float64 // raw lowercased name -> score
	norm    map[string]float64 // normalized name -> score
	p5      float64
	p95     float64
}

// Row is one record of the benchmark JSON export. Field tags follow the
// export's column headers verbatim.
type Row struct {
	DeviceName  string   `json:"Device Name"`
	MedianScore *float64 `json:"Median Score"`
	Benchmarks  int      `json:"Number of Benchmarks"`
}

// LoadTable reads a benchmark JSON file. A missing or unreadable file is not
// an error to the caller's pipeline: it returns an empty table and the
// scorer degrades to rule-only mode.
func LoadTable(path string, device Device, consumerOnly bool) (*Table, error) {
	t := emptyTable(device)

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read benchmark table %s: %w", path, err)
	}

	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return t, fmt.Errorf("decode benchmark table %s: %w", path, err)
	}

	return NewTable(rows, device, consumerOnly), nil
}

func emptyTable(device Device) *Table {
	t := &Table{
		device: device,
		exact:  make(map[string]float64),
		norm:   make(map[string]float64),
	}
	t.p5, t.p95 = defaultBounds(device)
	return t
}

func NewTable(rows []Row, device Device, consumerOnly bool) *Table {
	t := emptyTable(device)

	simplify := SimplifyCPU
	if device == DeviceGPU {
		simplify = SimplifyGPU
	}

	// Dedup by simplified name, keeping the best-attested entry.
	best := make(map[string]int) // simplified -> index into t.entries
	for _, r := range rows {
		if r.DeviceName == "" || r.MedianScore == nil {
			continue
		}
		if consumerOnly && IsServerName(r.DeviceName) {
			continue
		}

		simple := simplify(r.DeviceName)
		e := tableEntry{
			nameLC: strings.ToLower(strings.TrimSpace(r.DeviceName)),
			norm:   Normalize(r.DeviceName),
			tokens: tokenSet(simple),
			score:  *r.MedianScore,
			count:  r.Benchmarks,
		}

		if i, seen := best[simple]; seen {
			prev := t.entries[i]
			if e.count > prev.count || (e.count == prev.count && e.score > prev.score) {
				t.entries[i] = e
			}
			continue
		}
		best[simple] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	for _, e := range t.entries {
		t.exact[e.nameLC] = e.score
		t.norm[e.norm] = e.score
	}

	scores := make([]float64, 0, len(t.entries))
	for _, e := range t.entries {
		scores = append(scores, e.score)
	}
	if p5, ok := percentile(scores, 5); ok {
		t.p5 = p5
	}
	if p95, ok := percentile(scores, 95); ok {
		t.p95 = p95
	}

	return t
}

func defaultBounds(device Device) (lo, hi float64) {
	if device == DeviceCPU {
		return defaultCPULow, defaultCPULow + defaultCPUSpread
	}
	return defaultGPULow, defaultGPULow + defaultGPUSpread
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Bounds returns the 5th/95th percentile scores used for 0-100 rescaling.
func (t *Table) Bounds() (lo, hi float64) {
	return t.p5, t.p95
}

// percentile computes the p-th percentile with linear interpolation.
func percentile(values []float64, p float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	k := float64(len(sorted)-1) * (p / 100.0)
	f := math.Floor(k)
	c := math.Ceil(k)
	if f == c {
		return sorted[int(k)], true
	}
	return sorted[int(f)] + (sorted[int(c)]-sorted[int(f)])*(k-f), true
}
