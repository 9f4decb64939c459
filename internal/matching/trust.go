package matching

import (
	"math"

	"aidmatch/internal/utils"
	"aidmatch/pkg/types"
)

// TrustBreakdown holds the points each metric contributed to a trust score.
type TrustBreakdown struct {
	CompletionRate float64 `json:"completionRate"`
	AverageRating  float64 `json:"averageRating"`
	ResponseSpeed  float64 `json:"responseSpeed"`
	FraudBonus     float64 `json:"fraudBonus"`
	Longevity      float64 `json:"longevity"`
}

type TrustResult struct {
	TrustScore float64        `json:"trustScore"`
	Breakdown  TrustBreakdown `json:"breakdown"`
}

const (
	trustWeightCompletion = 0.30
	trustWeightRating     = 0.25
	trustWeightResponse   = 0.20
	trustWeightFraud      = 0.15
	trustWeightLongevity  = 0.10
)

// CalculateTrustScore derives a 0-100 reliability score from a provider's
// history. Inputs are not validated; the total is clamped instead.
func CalculateTrustScore(p types.Provider) TrustResult {
	fraud := 0.0
	if p.FraudIncidents == 0 {
		fraud = 100
	}

	breakdown := TrustBreakdown{
		CompletionRate: trustWeightCompletion * p.CompletionRate,
		AverageRating:  trustWeightRating * (p.AverageRating / 5 * 100),
		ResponseSpeed:  trustWeightResponse * math.Max(0, 100-2*p.ResponseTimeHours),
		FraudBonus:     trustWeightFraud * fraud,
		Longevity:      trustWeightLongevity * math.Min(100, p.YearsActive*10),
	}

	total := breakdown.CompletionRate +
		breakdown.AverageRating +
		breakdown.ResponseSpeed +
		breakdown.FraudBonus +
		breakdown.Longevity

	if math.IsNaN(total) {
		total = 0
	}
	total = math.Max(0, math.Min(100, total))

	return TrustResult{
		TrustScore: utils.RoundFloat64(total, 1),
		Breakdown:  breakdown,
	}
}
