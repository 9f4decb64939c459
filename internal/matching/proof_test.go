package matching

import (
	"testing"

	"aidmatch/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestReviewProof(t *testing.T) {
	b := &types.Beneficiary{
		ID:       "b1",
		Location: types.Location{Division: "Dhaka", Latitude: 23.8103, Longitude: 90.4125},
	}
	policy := DefaultProofPolicy()

	good := func() *types.DistributionProof {
		return &types.DistributionProof{
			PhotoURLs:      []string{"https://cdn.example.org/p/1.jpg"},
			Latitude:       23.8110,
			Longitude:      90.4130,
			FaceMatchScore: 0.93,
		}
	}

	t.Run("approved", func(t *testing.T) {
		got := ReviewProof(good(), b, policy)
		assert.True(t, got.Approved)
		assert.Empty(t, got.Reasons)
		assert.Less(t, got.DistanceKm, 1.0)
	})

	t.Run("weak face match", func(t *testing.T) {
		p := good()
		p.FaceMatchScore = 0.5
		got := ReviewProof(p, b, policy)
		assert.False(t, got.Approved)
		assert.False(t, got.FaceMatchOK)
		assert.Len(t, got.Reasons, 1)
	})

	t.Run("manipulated media", func(t *testing.T) {
		p := good()
		p.DeepfakeDetected = true
		got := ReviewProof(p, b, policy)
		assert.False(t, got.Approved)
		assert.False(t, got.MediaOK)
	})

	t.Run("no photos", func(t *testing.T) {
		p := good()
		p.PhotoURLs = nil
		assert.False(t, ReviewProof(p, b, policy).Approved)
	})

	t.Run("captured too far away", func(t *testing.T) {
		p := good()
		p.Latitude = 24.8103
		got := ReviewProof(p, b, policy)
		assert.False(t, got.Approved)
		assert.False(t, got.GPSOK)
		assert.InDelta(t, 111.19, got.DistanceKm, 0.1)
	})

	t.Run("nothing submitted", func(t *testing.T) {
		got := ReviewProof(nil, b, policy)
		assert.False(t, got.Approved)
		assert.Equal(t, []string{"no proof submitted"}, got.Reasons)
	})
}

func TestHaversineKm(t *testing.T) {
	assert.Zero(t, HaversineKm(23.81, 90.41, 23.81, 90.41))
	assert.InDelta(t, 111.19, HaversineKm(0, 0, 1, 0), 0.01)
}
