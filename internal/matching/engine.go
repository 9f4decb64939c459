package matching

import (
	"sort"

	"aidmatch/internal/utils"
	"aidmatch/pkg/types"

	"github.com/sirupsen/logrus"
)

// score combines the sub-scores of a provider against a need category and
// location using the configured weights.
func (m *Matcher) score(category types.NeedCategory, loc types.Location, p *types.Provider) (float64, ScoreBreakdown) {
	breakdown := ScoreBreakdown{
		Trust:          p.TrustScore,
		Geography:      GeographicScore(loc, p.GeographicFocus),
		Specialization: SpecializationScore(category, p.Specializations),
		Capacity:       CapacityScore(p.TotalAidedBeneficiaries, p.MaxActiveBeneficiaries),
		ResponseTime:   ResponseTimeScore(p.ResponseTimeHours),
	}

	w := m.config.Weights
	total := w.Trust*breakdown.Trust +
		w.Geography*float64(breakdown.Geography) +
		w.Specialization*float64(breakdown.Specialization) +
		w.Capacity*float64(breakdown.Capacity) +
		w.ResponseTime*float64(breakdown.ResponseTime)

	return utils.RoundFloat64(total, 2), breakdown
}

// Compatibility scores a single beneficiary/provider pair.
func (m *Matcher) Compatibility(b *types.Beneficiary, p *types.Provider) Match {
	total, breakdown := m.score(b.NeedCategory, b.Location, p)
	return Match{
		BeneficiaryID: b.ID,
		ProviderID:    p.ID,
		Score:         total,
		Breakdown:     breakdown,
	}
}

// FindOptimalMatch returns the most compatible eligible provider for the
// beneficiary, or nil when there are no candidates or the best score is
// below the match threshold. Ties go to the earlier candidate.
func (m *Matcher) FindOptimalMatch(b *types.Beneficiary, candidates []*types.Provider) *Match {
	if b == nil || len(candidates) == 0 {
		return nil
	}

	scored := make([]Match, 0, len(candidates))
	for _, p := range candidates {
		if p == nil || !p.Eligible() {
			continue
		}
		scored = append(scored, m.Compatibility(b, p))
	}

	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	best := scored[0]
	if best.Score < m.config.MatchThreshold {
		m.logger.WithFields(logrus.Fields{
			"beneficiary_id": b.ID,
			"best_score":     best.Score,
			"threshold":      m.config.MatchThreshold,
		}).Debug("best candidate below match threshold")
		return nil
	}

	return &best
}
