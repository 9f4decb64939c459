package matching

import (
	"fmt"
	"math"

	"aidmatch/pkg/types"
)

const earthRadiusKm = 6371.0

type ProofPolicy struct {
	MinFaceMatch  float64
	MaxDistanceKm float64
}

func DefaultProofPolicy() ProofPolicy {
	return ProofPolicy{MinFaceMatch: 0.8, MaxDistanceKm: 5}
}

type ProofVerdict struct {
	Approved    bool     `json:"approved"`
	FaceMatchOK bool     `json:"faceMatchOk"`
	MediaOK     bool     `json:"mediaOk"`
	GPSOK       bool     `json:"gpsOk"`
	DistanceKm  float64  `json:"distanceKm"`
	Reasons     []string `json:"reasons"`
}

// ReviewProof checks a distribution proof against the beneficiary it was
// submitted for. Every check must pass for the proof to be approved.
func ReviewProof(proof *types.DistributionProof, b *types.Beneficiary, policy ProofPolicy) ProofVerdict {
	verdict := ProofVerdict{Reasons: make([]string, 0)}
	if proof == nil || b == nil {
		verdict.Reasons = append(verdict.Reasons, "no proof submitted")
		return verdict
	}

	verdict.FaceMatchOK = proof.FaceMatchScore >= policy.MinFaceMatch
	if !verdict.FaceMatchOK {
		verdict.Reasons = append(verdict.Reasons, fmt.Sprintf("face match %.2f below %.2f", proof.FaceMatchScore, policy.MinFaceMatch))
	}

	verdict.MediaOK = !proof.DeepfakeDetected && len(proof.PhotoURLs) > 0
	if proof.DeepfakeDetected {
		verdict.Reasons = append(verdict.Reasons, "photo flagged as manipulated")
	}
	if len(proof.PhotoURLs) == 0 {
		verdict.Reasons = append(verdict.Reasons, "no photos attached")
	}

	verdict.DistanceKm = math.Round(HaversineKm(proof.Latitude, proof.Longitude, b.Latitude, b.Longitude)*100) / 100
	verdict.GPSOK = verdict.DistanceKm <= policy.MaxDistanceKm
	if !verdict.GPSOK {
		verdict.Reasons = append(verdict.Reasons, fmt.Sprintf("captured %.2fkm from the beneficiary, limit %.2fkm", verdict.DistanceKm, policy.MaxDistanceKm))
	}

	verdict.Approved = verdict.FaceMatchOK && verdict.MediaOK && verdict.GPSOK
	return verdict
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}
