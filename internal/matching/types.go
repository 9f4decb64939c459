package matching

import "aidmatch/pkg/types"

// Weights are the share of the compatibility score given to each
// sub-score. They are expected to sum to 1.
type Weights struct {
	Trust          float64 `json:"trust"`
	Geography      float64 `json:"geography"`
	Specialization float64 `json:"specialization"`
	Capacity       float64 `json:"capacity"`
	ResponseTime   float64 `json:"responseTime"`
}

// DefaultWeights is the canonical weighting used everywhere a provider is
// scored against a beneficiary or a crisis.
func DefaultWeights() Weights {
	return Weights{
		Trust:          0.35,
		Geography:      0.25,
		Specialization: 0.20,
		Capacity:       0.10,
		ResponseTime:   0.10,
	}
}

type Config struct {
	Weights Weights

	// MatchThreshold is the minimum compatibility score accepted by
	// FindOptimalMatch.
	MatchThreshold float64

	// PreferredBonus is added to providers on a donor's positive list.
	PreferredBonus float64

	DefaultSuggestions int
}

func DefaultConfig() Config {
	return Config{
		Weights:            DefaultWeights(),
		MatchThreshold:     40,
		PreferredBonus:     10,
		DefaultSuggestions: 5,
	}
}

// ScoreBreakdown holds the raw 0-100 sub-scores behind a compatibility score.
type ScoreBreakdown struct {
	Trust          float64 `json:"trust"`
	Geography      int     `json:"geography"`
	Specialization int     `json:"specialization"`
	Capacity       int     `json:"capacity"`
	ResponseTime   int     `json:"responseTime"`
}

// Match pairs a beneficiary with the provider chosen for it.
type Match struct {
	BeneficiaryID string         `json:"beneficiaryId"`
	ProviderID    string         `json:"providerId"`
	Score         float64        `json:"score"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
}

type BatchResult struct {
	Matches   []Match  `json:"matches"`
	Unmatched []string `json:"unmatched"`
}

// Suggestion is a ranked provider for a donation.
type Suggestion struct {
	Provider  *types.Provider `json:"provider"`
	Score     float64         `json:"score"`
	Breakdown ScoreBreakdown  `json:"breakdown"`
	Preferred bool            `json:"preferred"`
	Reasons   []string        `json:"reasons"`
}

// SuggestOptions narrows the providers considered for a donation. Zero
// values mean "no constraint".
type SuggestOptions struct {
	Limit           int      `form:"limit" json:"limit"`
	MinTrustScore   float64  `form:"min_trust" json:"minTrustScore"`
	ProviderTypes   []string `form:"type" json:"providerTypes"`
	ProviderSizes   []string `form:"size" json:"providerSizes"`
	Specializations []string `form:"specialization" json:"specializations"`
}
