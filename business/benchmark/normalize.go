package benchmark

import (
	"regexp"
	"strings"
)

// Marketing noise stripped before any normalized comparison.
var vendorStopwords = []string{
	"nvidia", "geforce", "rtx", "gtx", "graphics", "gpu",
	"intel", "amd", "radeon", "core", "processor", "cpu",
	"laptop gpu",
}

// Workstation/server-class device markers used by the consumer domain filter.
var serverKeywords = []string{
	"epyc", "xeon", "threadripper", "workstation", "server",
	"quadro", "tesla", "a100", "h100", "b100", "b200", "mi300",
	"instinct", "radeon pro w", "blackwell", "pro 6000",
}

var (
	punctRe    = regexp.MustCompile(`[\(\)\[\]\+\-_,/]`)
	spaceRe    = regexp.MustCompile(`\s+`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s\-\+]`)
	cpuNoiseRe = regexp.MustCompile(`\b(processor|cpu|with|tm)\b`)
	gpuNoiseRe = regexp.MustCompile(`\b(graphics|graphic|card|gpu|with|tm)\b`)
	mobileRe   = regexp.MustCompile(`\b(laptop|max\-q|maxq|mobile)\b`)
)

// Normalize lowercases, collapses punctuation and whitespace, and strips
// vendor stopwords. Its output is the key space of the normalized table
// index and of containment matching.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = punctRe.ReplaceAllString(s, " ")
	for _, w := range vendorStopwords {
		s = strings.ReplaceAll(s, w, " ")
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func normText(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// SimplifyCPU reduces a CPU marketing name to a stable dedup key
// ("AMD Ryzen 7 7840HS Processor" -> "ryzen 7 7840hs"). The key is only
// compared against other simplified keys, never shown to users.
func SimplifyCPU(s string) string {
	s = normText(s)
	s = cpuNoiseRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "intel core ", "i")
	s = strings.ReplaceAll(s, "intel ", " ")
	s = strings.ReplaceAll(s, "amd ryzen ", "ryzen ")
	s = strings.ReplaceAll(s, "amd epyc ", "epyc ")
	s = strings.ReplaceAll(s, "amd ", " ")
	s = strings.ReplaceAll(s, "apple ", " ")
	s = strings.ReplaceAll(s, "m series ", "m")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// SimplifyGPU reduces a GPU marketing name to a stable dedup key
// ("AMD Radeon RX 7600M XT" -> "rx 7600m xt"). Same contract as SimplifyCPU.
func SimplifyGPU(s string) string {
	s = normText(s)
	s = gpuNoiseRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "nvidia geforce rtx ", "rtx ")
	s = strings.ReplaceAll(s, "geforce rtx ", "rtx ")
	s = strings.ReplaceAll(s, "nvidia rtx ", "rtx ")
	s = strings.ReplaceAll(s, "geforce gtx ", "gtx ")
	s = strings.ReplaceAll(s, "nvidia ", " ")
	s = strings.ReplaceAll(s, "amd radeon rx ", "rx ")
	s = strings.ReplaceAll(s, "radeon rx ", "rx ")
	s = strings.ReplaceAll(s, "radeon ", " ")
	s = strings.ReplaceAll(s, "laptop gpu", "")
	s = strings.ReplaceAll(s, "mobile", "")
	s = strings.ReplaceAll(s, "core gpu", "core")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func tokenSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		out[t] = struct{}{}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// IsServerName reports whether the device name looks like a
// workstation/server part.
func IsServerName(s string) bool {
	t := strings.ToLower(s)
	for _, k := range serverKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
