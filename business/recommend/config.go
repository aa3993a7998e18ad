package recommend

// Params are the ranking tunables. Zero values are replaced by the
// documented defaults in Normalize.
type Params struct {
	// TopK is the result list size.
	TopK int
	// AlphaPrice/BetaPerf weight the scaled price/performance axes in the
	// distance; they need not sum to 1.
	AlphaPrice float64
	BetaPerf   float64
	// PriceJumpLambda scales the penalty on candidates pricier than the
	// query item.
	PriceJumpLambda float64
	// CandidateMargin is heuristic headroom over TopK taken from the index
	// so dedup does not force a re-query. Tunable, not an invariant.
	CandidateMargin int
	// Fresh pool bounds.
	FreshLimit      int
	FreshWindowDays int
	// Recency boost: sim' = sim * (1 + gamma * exp(-age/halfLife)).
	RecencyGamma    float64
	RecencyHalfLife float64
}

const (
	defaultTopK            = 10
	defaultAlphaPrice      = 0.6
	defaultBetaPerf        = 0.4
	defaultPriceJumpLambda = 0.6
	defaultCandidateMargin = 15
	defaultFreshLimit      = 200
	defaultFreshWindowDays = 60
	defaultRecencyGamma    = 0.12
	defaultRecencyHalfLife = 21.0

	// Fresh-item age is clamped to ten years.
	maxAgeDays = 3650.0
)

func DefaultParams() Params {
	return Params{
		TopK:            defaultTopK,
		AlphaPrice:      defaultAlphaPrice,
		BetaPerf:        defaultBetaPerf,
		PriceJumpLambda: defaultPriceJumpLambda,
		CandidateMargin: defaultCandidateMargin,
		FreshLimit:      defaultFreshLimit,
		FreshWindowDays: defaultFreshWindowDays,
		RecencyGamma:    defaultRecencyGamma,
		RecencyHalfLife: defaultRecencyHalfLife,
	}
}

// Normalize fills unset fields with defaults so a partially configured
// Params never produces a degenerate search.
func (p Params) Normalize() Params {
	d := DefaultParams()

	if p.TopK <= 0 {
		p.TopK = d.TopK
	}
	if p.AlphaPrice <= 0 {
		p.AlphaPrice = d.AlphaPrice
	}
	if p.BetaPerf <= 0 {
		p.BetaPerf = d.BetaPerf
	}
	if p.PriceJumpLambda < 0 {
		p.PriceJumpLambda = d.PriceJumpLambda
	}
	if p.CandidateMargin < 0 {
		p.CandidateMargin = d.CandidateMargin
	}
	if p.FreshLimit <= 0 {
		p.FreshLimit = d.FreshLimit
	}
	if p.FreshWindowDays <= 0 {
		p.FreshWindowDays = d.FreshWindowDays
	}
	if p.RecencyGamma < 0 {
		p.RecencyGamma = d.RecencyGamma
	}
	if p.RecencyHalfLife <= 0 {
		p.RecencyHalfLife = d.RecencyHalfLife
	}

	return p
}
