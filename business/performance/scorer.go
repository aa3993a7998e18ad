package performance

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"laptopMart/business/benchmark"
	"laptopMart/domain"
)

// Component weights of the final 0-100 performance score.
const (
	cpuWeight     = 0.40
	gpuWeight     = 0.35
	ramWeight     = 0.15
	storageWeight = 0.10
)

// Default RAM size assumed when the text carries no digits.
const defaultRAMGB = 8

type Result struct {
	Score     float64
	CPU100    float64
	GPU100    float64
	CPUSource string
	GPUSource string
}

// Scorer derives the performance score from raw spec text. It is a pure
// function of the spec fields and the benchmark tables, so scoring the same
// item twice always yields the same value.
type Scorer struct {
	matcher *benchmark.Matcher
}

func NewScorer(matcher *benchmark.Matcher) *Scorer {
	return &Scorer{matcher: matcher}
}

// Score combines CPU, GPU, RAM and storage components. CPU/GPU prefer the
// benchmark tables and fall back to the keyword-tier rules on no-match;
// RAM/storage are always rule-scored.
func (s *Scorer) Score(item domain.CatalogItem) Result {
	res := Result{
		CPUSource: domain.ScoreSourceRule,
		GPUSource: domain.ScoreSourceRule,
	}

	res.CPU100 = ruleCPU100(item.Processor)
	if s.matcher != nil {
		if v, _, ok := s.matcher.Score100(item.Processor, benchmark.DeviceCPU); ok {
			res.CPU100 = v
			res.CPUSource = domain.ScoreSourceBenchmark
		}
	}

	res.GPU100 = ruleGPU100(item.GraphicsCard)
	if s.matcher != nil {
		if v, _, ok := s.matcher.Score100(item.GraphicsCard, benchmark.DeviceGPU); ok {
			res.GPU100 = v
			res.GPUSource = domain.ScoreSourceBenchmark
		}
	}

	ram100 := ruleRAM100(item.RAM)
	storage100 := ruleStorage100(item.Storage)

	res.Score = round2(cpuWeight*res.CPU100 +
		gpuWeight*res.GPU100 +
		ramWeight*ram100 +
		storageWeight*storage100)

	return res
}

// CPU keyword tiers, checked in descending capability order.
func ruleCPU100(cpu string) float64 {
	s := strings.ToLower(cpu)
	switch {
	case containsAny(s, "m3 max", "m4 max", "i9", "ryzen 9", "ultra 9"):
		return 100
	case containsAny(s, "m3 pro", "m4 pro", "i7", "ryzen 7", "ultra 7"):
		return 80
	case containsAny(s, "m3", "m4", "i5", "ryzen 5", "ultra 5"):
		return 60
	default:
		return 40
	}
}

// GPU model-number tiers.
func ruleGPU100(gpu string) float64 {
	s := strings.ToLower(gpu)
	switch {
	case containsAny(s, "4080", "4090", "5070", "5080", "5090", "30-core", "40-core"):
		return 100
	case strings.Contains(s, "4070"):
		return 90
	case strings.Contains(s, "4060"):
		return 85
	case strings.Contains(s, "4050"):
		return 75
	case containsAny(s, "3050", "2050"):
		return 60
	case containsAny(s, "arc", "14-core", "16-core", "18-core"):
		return 40
	default:
		return 20
	}
}

var firstIntRe = regexp.MustCompile(`\d+`)

// ruleRAM100 reads the first integer token as gigabytes, defaulting to 8
// when the text has no digits.
func ruleRAM100(ram string) float64 {
	gb := defaultRAMGB
	if m := firstIntRe.FindString(ram); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			gb = n
		}
	}

	switch {
	case gb >= 32:
		return 100
	case gb >= 18:
		return 80
	case gb >= 16:
		return 70
	default:
		return 40
	}
}

func ruleStorage100(storage string) float64 {
	s := strings.ToLower(storage)
	switch {
	case strings.Contains(s, "4tb"):
		return 100
	case strings.Contains(s, "2tb"):
		return 90
	case strings.Contains(s, "1tb"):
		return 80
	case strings.Contains(s, "512"):
		return 60
	default:
		return 40
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
