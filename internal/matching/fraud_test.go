package matching

import (
	"testing"

	"aidmatch/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicant(id, nid, district string, category types.NeedCategory, amount int64) *types.Beneficiary {
	return &types.Beneficiary{
		ID:                   id,
		NIDNumber:            nid,
		Location:             types.Location{Division: "Dhaka", District: district},
		NeedCategory:         category,
		AmountRequestedCents: amount,
	}
}

func TestDetectFraudDuplicateNID(t *testing.T) {
	a := applicant("a", "1990123456789", "Gazipur", types.NeedCategoryMedical, 100)
	b := applicant("b", "1990123456789", "Narsingdi", types.NeedCategoryFood, 100)
	c := applicant("c", "1985000000001", "Gazipur", types.NeedCategoryMedical, 100)
	all := []*types.Beneficiary{a, b, c}

	t.Run("shared NID flags", func(t *testing.T) {
		got := DetectFraud(a, all)
		assert.Contains(t, got.Flags, FlagDuplicateNID)
		assert.Equal(t, 2, got.DuplicateCount)
		assert.Equal(t, RiskHigh, got.RiskLevel)
	})

	t.Run("single occurrence never flags", func(t *testing.T) {
		got := DetectFraud(c, all)
		assert.NotContains(t, got.Flags, FlagDuplicateNID)
		assert.Equal(t, 1, got.DuplicateCount)
		assert.False(t, got.Suspicious())
		assert.Equal(t, RiskLow, got.RiskLevel)
	})

	t.Run("match is exact", func(t *testing.T) {
		near := applicant("n", "1990123456789 ", "Gazipur", types.NeedCategoryMedical, 100)
		got := DetectFraud(near, all)
		assert.NotContains(t, got.Flags, FlagDuplicateNID)
	})

	t.Run("target outside the collection", func(t *testing.T) {
		dup := applicant("new", "1985000000001", "Gazipur", types.NeedCategoryMedical, 100)
		got := DetectFraud(dup, all)
		assert.Contains(t, got.Flags, FlagDuplicateNID)
		assert.Equal(t, 2, got.DuplicateCount)
	})

	t.Run("empty NIDs are ignored", func(t *testing.T) {
		x := applicant("x", "", "Gazipur", types.NeedCategoryMedical, 100)
		y := applicant("y", "", "Gazipur", types.NeedCategoryMedical, 100)
		got := DetectFraud(x, []*types.Beneficiary{x, y})
		assert.NotContains(t, got.Flags, FlagDuplicateNID)
	})
}

func TestDetectFraudCountsEveryEntry(t *testing.T) {
	t.Run("unsaved applications sharing an NID", func(t *testing.T) {
		a := applicant("", "1990123456789", "Gazipur", types.NeedCategoryMedical, 100)
		b := applicant("", "1990123456789", "Gazipur", types.NeedCategoryMedical, 100)
		all := []*types.Beneficiary{a, b}

		got := DetectFraud(a, all)
		assert.Equal(t, 2, got.DuplicateCount)
		assert.Contains(t, got.Flags, FlagDuplicateNID)

		reports := ScanFraud(all)
		require.Len(t, reports, 2)
		for _, r := range reports {
			assert.Equal(t, 2, r.DuplicateCount)
			assert.Contains(t, r.Flags, FlagDuplicateNID)
		}
	})

	t.Run("colliding IDs", func(t *testing.T) {
		a := applicant("same", "1990123456789", "Gazipur", types.NeedCategoryMedical, 100)
		b := applicant("same", "1990123456789", "Gazipur", types.NeedCategoryMedical, 100)

		got := DetectFraud(b, []*types.Beneficiary{a, b})
		assert.Equal(t, 2, got.DuplicateCount)
		assert.Equal(t, 2, got.PeerCount)
	})

	t.Run("target in the collection is not counted twice", func(t *testing.T) {
		a := applicant("", "1990123456789", "Gazipur", types.NeedCategoryMedical, 100)
		c := applicant("", "1985000000001", "Gazipur", types.NeedCategoryMedical, 100)

		got := DetectFraud(a, []*types.Beneficiary{a, c})
		assert.Equal(t, 1, got.DuplicateCount)
		assert.False(t, got.Suspicious())
	})
}

func TestDetectFraudCostOutlier(t *testing.T) {
	peers := []*types.Beneficiary{
		applicant("p1", "1", "Gazipur", types.NeedCategoryMedical, 100),
		applicant("p2", "2", "Gazipur", types.NeedCategoryMedical, 100),
		applicant("p3", "3", "Gazipur", types.NeedCategoryMedical, 100),
		applicant("other-district", "4", "Tangail", types.NeedCategoryMedical, 10000),
		applicant("other-category", "5", "Gazipur", types.NeedCategoryFood, 10000),
	}

	t.Run("well above the peer mean", func(t *testing.T) {
		target := applicant("t", "9", "Gazipur", types.NeedCategoryMedical, 200)
		got := DetectFraud(target, append(peers, target))

		assert.Equal(t, []FraudFlag{FlagCostOutlier}, got.Flags)
		assert.Equal(t, 4, got.PeerCount)
		assert.InDelta(t, 125, got.PeerMeanCents, 0.001)
		assert.Equal(t, RiskMedium, got.RiskLevel)
	})

	t.Run("within thirty percent", func(t *testing.T) {
		target := applicant("t", "9", "Gazipur", types.NeedCategoryMedical, 140)
		got := DetectFraud(target, peers)

		assert.Empty(t, got.Flags)
		assert.InDelta(t, 110, got.PeerMeanCents, 0.001)
	})

	t.Run("alone in its group", func(t *testing.T) {
		target := applicant("t", "9", "Bogura", types.NeedCategoryShelter, 999999)
		got := DetectFraud(target, peers)

		assert.Empty(t, got.Flags)
		assert.Equal(t, 1, got.PeerCount)
	})
}

func TestDetectFraudNilTarget(t *testing.T) {
	got := DetectFraud(nil, nil)
	assert.False(t, got.Suspicious())
	assert.Equal(t, RiskLow, got.RiskLevel)
}

func TestScanFraud(t *testing.T) {
	all := []*types.Beneficiary{
		applicant("a", "111", "Gazipur", types.NeedCategoryMedical, 100),
		applicant("b", "111", "Gazipur", types.NeedCategoryMedical, 100),
		applicant("c", "222", "Gazipur", types.NeedCategoryMedical, 100),
		applicant("d", "333", "Gazipur", types.NeedCategoryMedical, 500),
		nil,
	}

	reports := ScanFraud(all)
	require.Len(t, reports, 4)

	byID := map[string]FraudReport{}
	for _, r := range reports {
		byID[r.BeneficiaryID] = r
	}

	assert.Equal(t, []FraudFlag{FlagDuplicateNID}, byID["a"].Flags)
	assert.Equal(t, []FraudFlag{FlagDuplicateNID}, byID["b"].Flags)
	assert.Empty(t, byID["c"].Flags)
	assert.Equal(t, []FraudFlag{FlagCostOutlier}, byID["d"].Flags)

	// the per-target check agrees with the scan
	for _, b := range all[:4] {
		assert.Equal(t, byID[b.ID], DetectFraud(b, all), b.ID)
	}
}
