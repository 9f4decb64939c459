package types

import "time"

// PlatformFeePerMille is the 2.5% fee charged on every donation.
const PlatformFeePerMille = 25

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusAllocated DonationStatus = "allocated"
	DonationStatusCompleted DonationStatus = "completed"
)

type ProviderPreference struct {
	PreferredProviderIDs []string `db:"preferred_provider_ids" json:"preferredProviderIds"`
	ExcludedProviderIDs  []string `db:"excluded_provider_ids" json:"excludedProviderIds"`
	PreferredDivisions   []string `db:"preferred_divisions" json:"preferredDivisions"`
	MinTrustScore        float64  `db:"min_trust_score" json:"minTrustScore"`
}

type Donation struct {
	ID          string `db:"id" json:"id"`
	DonorID     string `db:"donor_id" json:"donorId"`
	CrisisID    string `db:"crisis_id" json:"crisisId"`
	AmountCents int64  `db:"amount_cents" json:"amountCents"`
	FeeCents    int64  `db:"fee_cents" json:"feeCents"`

	ProviderPreference

	Status    DonationStatus `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`

	Allocations []*BeneficiaryAllocation `db:"-" json:"allocations,omitempty"`
}

// PlatformFee returns the fee for a donation amount, rounded half up.
func PlatformFee(amountCents int64) int64 {
	if amountCents <= 0 {
		return 0
	}
	return (amountCents*PlatformFeePerMille + 500) / 1000
}

// NetCents is the amount left for beneficiaries after the platform fee.
func (d *Donation) NetCents() int64 {
	return d.AmountCents - d.FeeCents
}
