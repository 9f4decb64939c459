package matching

import (
	"testing"

	"aidmatch/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTrustScore(t *testing.T) {
	tests := []struct {
		name     string
		provider types.Provider
		want     float64
	}{
		{
			name: "established provider",
			provider: types.Provider{
				CompletionRate:    90,
				AverageRating:     4.5,
				ResponseTimeHours: 6,
				YearsActive:       8,
			},
			want: 90.1,
		},
		{
			name: "perfect record",
			provider: types.Provider{
				CompletionRate: 100,
				AverageRating:  5,
				YearsActive:    20,
			},
			want: 100,
		},
		{
			name:     "no history with fraud",
			provider: types.Provider{FraudIncidents: 2},
			want:     20,
		},
		{
			name: "slow responder gets no response points",
			provider: types.Provider{
				CompletionRate:    50,
				ResponseTimeHours: 72,
				FraudIncidents:    1,
			},
			want: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTrustScore(tt.provider)
			assert.InDelta(t, tt.want, got.TrustScore, 0.001)
		})
	}
}

func TestCalculateTrustScoreBreakdown(t *testing.T) {
	got := CalculateTrustScore(types.Provider{
		CompletionRate:    80,
		AverageRating:     4,
		ResponseTimeHours: 10,
		YearsActive:       3,
	})

	assert.InDelta(t, 24, got.Breakdown.CompletionRate, 0.001)
	assert.InDelta(t, 20, got.Breakdown.AverageRating, 0.001)
	assert.InDelta(t, 16, got.Breakdown.ResponseSpeed, 0.001)
	assert.InDelta(t, 15, got.Breakdown.FraudBonus, 0.001)
	assert.InDelta(t, 3, got.Breakdown.Longevity, 0.001)
	assert.InDelta(t, 78, got.TrustScore, 0.001)
}

func TestCalculateTrustScoreCompletionBounds(t *testing.T) {
	low := CalculateTrustScore(types.Provider{CompletionRate: 0})
	high := CalculateTrustScore(types.Provider{CompletionRate: 100})

	assert.InDelta(t, 35, low.TrustScore, 0.001)
	assert.InDelta(t, 65, high.TrustScore, 0.001)
}

func TestCalculateTrustScoreFraudToggle(t *testing.T) {
	base := types.Provider{
		CompletionRate:    72,
		AverageRating:     3.8,
		ResponseTimeHours: 17,
		YearsActive:       4,
	}

	clean := CalculateTrustScore(base)

	base.FraudIncidents = 1
	flagged := CalculateTrustScore(base)

	assert.InDelta(t, 15, clean.TrustScore-flagged.TrustScore, 0.001)
	assert.Zero(t, flagged.Breakdown.FraudBonus)
}

func TestCalculateTrustScoreAlwaysInRange(t *testing.T) {
	values := []float64{-1000, -1, 0, 0.5, 3, 50, 100, 250, 1e6}

	for _, completion := range values {
		for _, rating := range values {
			for _, hours := range values {
				for _, years := range values {
					for _, incidents := range []int{-1, 0, 3} {
						got := CalculateTrustScore(types.Provider{
							CompletionRate:    completion,
							AverageRating:     rating,
							ResponseTimeHours: hours,
							YearsActive:       years,
							FraudIncidents:    incidents,
						})
						if got.TrustScore < 0 || got.TrustScore > 100 {
							t.Fatalf("trust score %v out of range for %v/%v/%v/%v/%d",
								got.TrustScore, completion, rating, hours, years, incidents)
						}
					}
				}
			}
		}
	}
}
