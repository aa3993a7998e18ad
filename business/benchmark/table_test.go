//go:build !integration

package benchmark

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestNewTableDedupKeepsBestAttested(t *testing.T) {
	rows := []Row{
		{DeviceName: "Intel Core i9-13900H", MedianScore: fp(28000), Benchmarks: 10},
		{DeviceName: "Intel Core i9-13900H Processor", MedianScore: fp(29500), Benchmarks: 120},
	}

	tab := NewTable(rows, DeviceCPU, true)
	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after dedup", tab.Len())
	}
	if got := tab.exact["intel core i9-13900h processor"]; got != 29500 {
		t.Errorf("kept entry score = %v, want 29500 (higher benchmark count)", got)
	}
}

func TestNewTableSkipsInvalidRows(t *testing.T) {
	rows := []Row{
		{DeviceName: "", MedianScore: fp(1000), Benchmarks: 5},
		{DeviceName: "Intel Core i5-1335U", MedianScore: nil, Benchmarks: 5},
		{DeviceName: "Intel Core i7-13700H", MedianScore: fp(22000), Benchmarks: 40},
	}

	tab := NewTable(rows, DeviceCPU, true)
	if tab.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tab.Len())
	}
}

func TestNewTableConsumerFilter(t *testing.T) {
	rows := []Row{
		{DeviceName: "AMD EPYC 9654", MedianScore: fp(90000), Benchmarks: 30},
		{DeviceName: "Intel Core i7-13700H", MedianScore: fp(22000), Benchmarks: 40},
	}

	consumer := NewTable(rows, DeviceCPU, true)
	if consumer.Len() != 1 {
		t.Errorf("consumer-only Len() = %d, want 1", consumer.Len())
	}

	all := NewTable(rows, DeviceCPU, false)
	if all.Len() != 2 {
		t.Errorf("unfiltered Len() = %d, want 2", all.Len())
	}
}

func TestTableBoundsPercentiles(t *testing.T) {
	rows := make([]Row, 0, 11)
	names := []string{
		"Intel Core i3-1315U", "Intel Core i5-1235U", "Intel Core i5-1335U",
		"Intel Core i5-13500H", "Intel Core i7-1255U", "Intel Core i7-1355U",
		"Intel Core i7-12700H", "Intel Core i7-13700H", "Intel Core i9-12900H",
		"Intel Core i9-13900H", "Intel Core i9-13980HX",
	}
	for i, n := range names {
		rows = append(rows, Row{DeviceName: n, MedianScore: fp(float64((i + 1) * 10)), Benchmarks: 10})
	}

	tab := NewTable(rows, DeviceCPU, true)
	lo, hi := tab.Bounds()
	// 11 sorted values 10..110: p5 interpolates to 15, p95 to 105.
	if math.Abs(lo-15) > 1e-9 {
		t.Errorf("p5 = %v, want 15", lo)
	}
	if math.Abs(hi-105) > 1e-9 {
		t.Errorf("p95 = %v, want 105", hi)
	}
}

func TestEmptyTableDefaultBounds(t *testing.T) {
	cpu := NewTable(nil, DeviceCPU, true)
	lo, hi := cpu.Bounds()
	if lo != defaultCPULow || hi != defaultCPULow+defaultCPUSpread {
		t.Errorf("cpu bounds = (%v, %v), want (%v, %v)", lo, hi, defaultCPULow, defaultCPULow+defaultCPUSpread)
	}

	gpu := NewTable(nil, DeviceGPU, true)
	lo, hi = gpu.Bounds()
	if lo != defaultGPULow || hi != defaultGPULow+defaultGPUSpread {
		t.Errorf("gpu bounds = (%v, %v), want (%v, %v)", lo, hi, defaultGPULow, defaultGPULow+defaultGPUSpread)
	}
}

func TestLoadTableMissingFileDegrades(t *testing.T) {
	tab, err := LoadTable(filepath.Join(t.TempDir(), "nope.json"), DeviceCPU, true)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if tab == nil || tab.Len() != 0 {
		t.Errorf("expected usable empty table, got %+v", tab)
	}
}

func TestLoadTableParsesExportShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.json")
	payload := `[
		{"Device Name": "Intel Core i7-13700H", "Median Score": 22000, "Number of Benchmarks": 40},
		{"Device Name": "AMD Ryzen 7 7840HS", "Median Score": 24500, "Number of Benchmarks": 55}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	tab, err := LoadTable(path, DeviceCPU, true)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
	if got := tab.exact["amd ryzen 7 7840hs"]; got != 24500 {
		t.Errorf("exact lookup = %v, want 24500", got)
	}
}

func TestPercentileSingleValue(t *testing.T) {
	v, ok := percentile([]float64{42}, 95)
	if !ok || v != 42 {
		t.Errorf("percentile single value = (%v, %v), want (42, true)", v, ok)
	}

	if _, ok := percentile(nil, 5); ok {
		t.Error("percentile(nil) reported ok")
	}
}
