package types

import (
	"fmt"
	"time"
)

type Urgency string

const (
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
	UrgencyCritical  Urgency = "critical"
)

// Rank orders urgencies for batch matching. Unknown values rank lowest.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyEmergency:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	}
	return 0
}

type ApplicationStatus string

const (
	ApplicationStatusSubmitted  ApplicationStatus = "submitted"
	ApplicationStatusVerified   ApplicationStatus = "verified"
	ApplicationStatusMatched    ApplicationStatus = "matched"
	ApplicationStatusInProgress ApplicationStatus = "in_progress"
	ApplicationStatusCompleted  ApplicationStatus = "completed"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
)

var applicationStatusOrder = map[ApplicationStatus]int{
	ApplicationStatusSubmitted:  0,
	ApplicationStatusVerified:   1,
	ApplicationStatusMatched:    2,
	ApplicationStatusInProgress: 3,
	ApplicationStatusCompleted:  4,
}

// Terminal reports whether no further transition is possible.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusCompleted || s == ApplicationStatusRejected
}

// CanAdvance reports whether an application may move from one status to
// another. Statuses only move forward; rejected is reachable from any
// non-terminal status.
func CanAdvance(from, to ApplicationStatus) bool {
	if from.Terminal() {
		return false
	}

	if to == ApplicationStatusRejected {
		return true
	}

	fromIdx, ok := applicationStatusOrder[from]
	if !ok {
		return false
	}
	toIdx, ok := applicationStatusOrder[to]
	if !ok {
		return false
	}

	return toIdx > fromIdx
}

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"
)

type NeedCategory string

const (
	NeedCategoryMedical        NeedCategory = "medical"
	NeedCategoryEducation      NeedCategory = "education"
	NeedCategoryFood           NeedCategory = "food"
	NeedCategoryShelter        NeedCategory = "shelter"
	NeedCategoryLivelihood     NeedCategory = "livelihood"
	NeedCategoryDisasterRelief NeedCategory = "disaster_relief"
	NeedCategoryWater          NeedCategory = "water_sanitation"
)

type Location struct {
	Division  string  `db:"division" json:"division"`
	District  string  `db:"district" json:"district"`
	Upazila   string  `db:"upazila" json:"upazila"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
}

type Beneficiary struct {
	ID        string `db:"id" json:"id"`
	NIDNumber string `db:"nid_number" json:"nidNumber"`
	FullName  string `db:"full_name" json:"fullName"`

	Location

	NeedCategory         NeedCategory       `db:"need_category" json:"needCategory"`
	AmountRequestedCents int64              `db:"amount_requested_cents" json:"amountRequestedCents"`
	AmountReceivedCents  int64              `db:"amount_received_cents" json:"amountReceivedCents"`
	Urgency              Urgency            `db:"urgency" json:"urgency"`
	ApplicationStatus    ApplicationStatus  `db:"application_status" json:"applicationStatus"`
	VerificationStatus   VerificationStatus `db:"verification_status" json:"verificationStatus"`
	MatchedProviderID    *string            `db:"matched_provider_id" json:"matchedProviderId,omitempty"`
	CreatedAt            time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time          `db:"updated_at" json:"updatedAt"`
}

// Advance moves the application to the given status.
func (b *Beneficiary) Advance(to ApplicationStatus) error {
	if !CanAdvance(b.ApplicationStatus, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, b.ApplicationStatus, to)
	}

	b.ApplicationStatus = to
	return nil
}

// OutstandingCents is what is still needed to cover the request.
func (b *Beneficiary) OutstandingCents() int64 {
	if b.AmountReceivedCents >= b.AmountRequestedCents {
		return 0
	}
	return b.AmountRequestedCents - b.AmountReceivedCents
}
