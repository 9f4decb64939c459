package matching

import (
	"testing"

	"aidmatch/pkg/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beneficiary(id string, urgency types.Urgency, division string, category types.NeedCategory) *types.Beneficiary {
	return &types.Beneficiary{
		ID:                id,
		NIDNumber:         "NID-" + id,
		Location:          types.Location{Division: division},
		NeedCategory:      category,
		Urgency:           urgency,
		ApplicationStatus: types.ApplicationStatusVerified,
	}
}

func TestBatchMatch(t *testing.T) {
	m := New(DefaultConfig(), nil)

	p1 := &types.Provider{
		ID:                     "p1",
		Status:                 types.ProviderStatusActive,
		TrustScore:             80,
		Specializations:        []string{"medical"},
		GeographicFocus:        types.GeographicFocus{Divisions: []string{"Dhaka"}},
		MaxActiveBeneficiaries: 1,
		ResponseTimeHours:      2,
	}
	p2 := &types.Provider{
		ID:                     "p2",
		Status:                 types.ProviderStatusActive,
		TrustScore:             60,
		Specializations:        []string{"food"},
		GeographicFocus:        types.GeographicFocus{Divisions: []string{"Sylhet"}},
		MaxActiveBeneficiaries: 10,
		ResponseTimeHours:      10,
	}

	beneficiaries := []*types.Beneficiary{
		beneficiary("b1", types.UrgencyMedium, "Dhaka", types.NeedCategoryMedical),
		beneficiary("b2", types.UrgencyCritical, "Dhaka", types.NeedCategoryMedical),
		beneficiary("b3", types.UrgencyHigh, "Sylhet", types.NeedCategoryFood),
	}

	got := m.BatchMatch(beneficiaries, []*types.Provider{p1, p2})

	want := BatchResult{
		Matches: []Match{
			{
				BeneficiaryID: "b2",
				ProviderID:    "p1",
				Score:         93,
				Breakdown:     ScoreBreakdown{Trust: 80, Geography: 100, Specialization: 100, Capacity: 100, ResponseTime: 100},
			},
			{
				BeneficiaryID: "b3",
				ProviderID:    "p2",
				Score:         84,
				Breakdown:     ScoreBreakdown{Trust: 60, Geography: 100, Specialization: 100, Capacity: 100, ResponseTime: 80},
			},
			{
				BeneficiaryID: "b1",
				ProviderID:    "p2",
				Score:         66,
				Breakdown:     ScoreBreakdown{Trust: 60, Geography: 60, Specialization: 60, Capacity: 100, ResponseTime: 80},
			},
		},
		Unmatched: []string{},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BatchMatch() mismatch (-want +got):\n%s", diff)
	}

	// input order is left alone
	assert.Equal(t, "b1", beneficiaries[0].ID)
	assert.Equal(t, 0, p1.TotalAidedBeneficiaries)
}

func TestBatchMatchRespectsCapacity(t *testing.T) {
	m := New(DefaultConfig(), nil)

	p := medicalProvider("p1", 90)
	p.MaxActiveBeneficiaries = 12
	p.TotalAidedBeneficiaries = 10

	beneficiaries := make([]*types.Beneficiary, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		beneficiaries = append(beneficiaries, dhakaMedical(id))
	}

	got := m.BatchMatch(beneficiaries, []*types.Provider{p})

	require.Len(t, got.Matches, 2)
	assert.Equal(t, []string{"c", "d", "e"}, got.Unmatched)

	perProvider := map[string]int{}
	for _, match := range got.Matches {
		perProvider[match.ProviderID]++
	}
	assert.LessOrEqual(t, perProvider["p1"], p.RemainingCapacity())
}

func TestBatchMatchUrgencyOrder(t *testing.T) {
	m := New(DefaultConfig(), nil)

	p := medicalProvider("p1", 90)
	p.MaxActiveBeneficiaries = 11

	medium := dhakaMedical("medium")
	medium.Urgency = types.UrgencyMedium
	high := dhakaMedical("high")
	high.Urgency = types.UrgencyHigh
	emergency := dhakaMedical("emergency")
	emergency.Urgency = types.UrgencyEmergency
	critical := dhakaMedical("critical")
	critical.Urgency = types.UrgencyCritical

	got := m.BatchMatch([]*types.Beneficiary{medium, high, emergency, critical}, []*types.Provider{p})

	require.Len(t, got.Matches, 1)
	assert.Equal(t, "critical", got.Matches[0].BeneficiaryID)
	assert.Equal(t, []string{"emergency", "high", "medium"}, got.Unmatched)
}

func TestBatchMatchEqualUrgencyKeepsInputOrder(t *testing.T) {
	m := New(DefaultConfig(), nil)

	p := medicalProvider("p1", 90)
	p.MaxActiveBeneficiaries = 11

	got := m.BatchMatch([]*types.Beneficiary{dhakaMedical("first"), dhakaMedical("second")}, []*types.Provider{p})

	require.Len(t, got.Matches, 1)
	assert.Equal(t, "first", got.Matches[0].BeneficiaryID)
	assert.Equal(t, []string{"second"}, got.Unmatched)
}

func TestBatchMatchOverfullProvider(t *testing.T) {
	m := New(DefaultConfig(), nil)

	p := medicalProvider("p1", 90)
	p.TotalAidedBeneficiaries = 70

	got := m.BatchMatch([]*types.Beneficiary{dhakaMedical("b1")}, []*types.Provider{p})

	assert.Empty(t, got.Matches)
	assert.Equal(t, []string{"b1"}, got.Unmatched)
}

func TestBatchMatchEmpty(t *testing.T) {
	m := New(DefaultConfig(), nil)

	got := m.BatchMatch(nil, nil)
	assert.Empty(t, got.Matches)
	assert.Empty(t, got.Unmatched)
	assert.NotNil(t, got.Matches)
}
