package types

import "time"

type AllocationStatus string

const (
	AllocationStatusPending     AllocationStatus = "pending"
	AllocationStatusDistributed AllocationStatus = "distributed"
	AllocationStatusVerified    AllocationStatus = "verified"
	AllocationStatusDisputed    AllocationStatus = "disputed"
)

type BeneficiaryAllocation struct {
	ID            string             `db:"id" json:"id"`
	DonationID    string             `db:"donation_id" json:"donationId"`
	BeneficiaryID string             `db:"beneficiary_id" json:"beneficiaryId"`
	ProviderID    string             `db:"provider_id" json:"providerId"`
	AmountCents   int64              `db:"amount_cents" json:"amountCents"`
	Status        AllocationStatus   `db:"status" json:"status"`
	Proof         *DistributionProof `db:"proof" json:"proof,omitempty"`
	CreatedAt     time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updatedAt"`
}

// DistributionProof is the evidence a provider submits after handing aid
// to a beneficiary. Stored as jsonb on the allocation row.
type DistributionProof struct {
	PhotoURLs        []string  `json:"photoUrls" validate:"required,min=1,dive,url"`
	SignatureURL     string    `json:"signatureUrl" validate:"omitempty,url"`
	Latitude         float64   `json:"latitude" validate:"latitude"`
	Longitude        float64   `json:"longitude" validate:"longitude"`
	FaceMatchScore   float64   `json:"faceMatchScore" validate:"gte=0,lte=1"`
	DeepfakeDetected bool      `json:"deepfakeDetected"`
	GPSValidated     bool      `json:"gpsValidated"`
	SubmittedAt      time.Time `json:"submittedAt"`
}
