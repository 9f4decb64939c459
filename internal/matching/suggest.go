package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aidmatch/internal/utils"
	"aidmatch/pkg/types"
)

// SuggestProviders ranks providers for a donation towards a crisis. The
// donor's preferences and opts filter the list; providers on the donor's
// positive list get a bonus. At most opts.Limit suggestions are returned.
func (m *Matcher) SuggestProviders(d *types.Donation, c *types.Crisis, providers []*types.Provider, opts SuggestOptions) []Suggestion {
	suggestions := make([]Suggestion, 0)
	if d == nil || c == nil {
		return suggestions
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = m.config.DefaultSuggestions
	}

	minTrust := math.Max(opts.MinTrustScore, d.MinTrustScore)

	for _, p := range providers {
		if p == nil || !p.Eligible() {
			continue
		}
		if utils.ContainsString(d.ExcludedProviderIDs, p.ID) {
			continue
		}
		if p.TrustScore < minTrust {
			continue
		}
		if len(opts.ProviderTypes) > 0 && !utils.ContainsFold(opts.ProviderTypes, string(p.Type)) {
			continue
		}
		if len(opts.ProviderSizes) > 0 && !utils.ContainsFold(opts.ProviderSizes, string(p.Size)) {
			continue
		}
		if len(opts.Specializations) > 0 && !sharesSpecialization(opts.Specializations, p.Specializations) {
			continue
		}
		if len(d.PreferredDivisions) > 0 && !coversAnyDivision(p.Divisions, d.PreferredDivisions) {
			continue
		}

		total, breakdown := m.score(c.Category, c.Location(), p)

		preferred := utils.ContainsString(d.PreferredProviderIDs, p.ID)
		if preferred {
			total = math.Min(100, total+m.config.PreferredBonus)
		}

		suggestions = append(suggestions, Suggestion{
			Provider:  p,
			Score:     utils.RoundFloat64(total, 2),
			Breakdown: breakdown,
			Preferred: preferred,
			Reasons:   matchReasons(c, p, breakdown, preferred),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions
}

func sharesSpecialization(wanted, has []string) bool {
	for _, w := range wanted {
		for _, h := range has {
			if normalizeSpecialization(w) == normalizeSpecialization(h) {
				return true
			}
		}
	}
	return false
}

func coversAnyDivision(has, wanted []string) bool {
	for _, w := range wanted {
		for _, h := range has {
			if normalizeDivision(w) == normalizeDivision(h) {
				return true
			}
		}
	}
	return false
}

func matchReasons(c *types.Crisis, p *types.Provider, breakdown ScoreBreakdown, preferred bool) []string {
	reasons := make([]string, 0, 6)

	if preferred {
		reasons = append(reasons, "Preferred by donor")
	}

	switch {
	case breakdown.Trust >= 85:
		reasons = append(reasons, fmt.Sprintf("Highly trusted provider (trust score %.0f)", breakdown.Trust))
	case breakdown.Trust >= 70:
		reasons = append(reasons, fmt.Sprintf("Trusted provider (trust score %.0f)", breakdown.Trust))
	}

	switch breakdown.Geography {
	case 100:
		reasons = append(reasons, fmt.Sprintf("Operates in %s division", c.Division))
	case 85:
		reasons = append(reasons, fmt.Sprintf("Operates in %s district", c.District))
	case 60:
		reasons = append(reasons, fmt.Sprintf("Operates near %s division", c.Division))
	}

	if breakdown.Specialization == 100 {
		reasons = append(reasons, fmt.Sprintf("Specializes in %s", strings.ReplaceAll(string(c.Category), "_", " ")))
	}

	if breakdown.Capacity >= 85 {
		reasons = append(reasons, fmt.Sprintf("Capacity for %d more beneficiaries", p.RemainingCapacity()))
	}

	if breakdown.ResponseTime >= 80 {
		reasons = append(reasons, fmt.Sprintf("Fast response time (~%.0fh)", p.ResponseTimeHours))
	}

	return reasons
}
