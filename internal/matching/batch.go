package matching

import (
	"sort"

	"aidmatch/pkg/types"

	"github.com/sirupsen/logrus"
)

// BatchMatch assigns beneficiaries to providers in one greedy pass, most
// urgent first. Equal urgencies keep their input order. A provider never
// receives more beneficiaries than its remaining capacity at the start of
// the batch. Neither slice is modified.
func (m *Matcher) BatchMatch(beneficiaries []*types.Beneficiary, providers []*types.Provider) BatchResult {
	result := BatchResult{
		Matches:   make([]Match, 0),
		Unmatched: make([]string, 0),
	}

	ordered := make([]*types.Beneficiary, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		if b != nil {
			ordered = append(ordered, b)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Urgency.Rank() > ordered[j].Urgency.Rank()
	})

	remaining := make(map[string]int, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}
		remaining[p.ID] = p.RemainingCapacity()
	}

	available := make([]*types.Provider, 0, len(providers))
	for _, b := range ordered {
		available = available[:0]
		for _, p := range providers {
			if p != nil && remaining[p.ID] > 0 {
				available = append(available, p)
			}
		}

		match := m.FindOptimalMatch(b, available)
		if match == nil {
			result.Unmatched = append(result.Unmatched, b.ID)
			continue
		}

		remaining[match.ProviderID]--
		result.Matches = append(result.Matches, *match)
	}

	m.logger.WithFields(logrus.Fields{
		"beneficiaries": len(ordered),
		"providers":     len(providers),
		"matched":       len(result.Matches),
		"unmatched":     len(result.Unmatched),
	}).Debug("batch match complete")

	return result
}
