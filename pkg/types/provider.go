package types

import "time"

type ProviderStatus string

const (
	ProviderStatusActive    ProviderStatus = "active"
	ProviderStatusWatchlist ProviderStatus = "watchlist"
	ProviderStatusSuspended ProviderStatus = "suspended"
	ProviderStatusBanned    ProviderStatus = "banned"
)

type ProviderType string

const (
	ProviderTypeNGO        ProviderType = "ngo"
	ProviderTypeCharity    ProviderType = "charity"
	ProviderTypeCommunity  ProviderType = "community"
	ProviderTypeGovernment ProviderType = "government"
)

type ProviderSize string

const (
	ProviderSizeSmall  ProviderSize = "small"
	ProviderSizeMedium ProviderSize = "medium"
	ProviderSizeLarge  ProviderSize = "large"
)

type GeographicFocus struct {
	Divisions []string `db:"divisions" json:"divisions"`
	Districts []string `db:"districts" json:"districts"`
}

type Provider struct {
	ID     string         `db:"id" json:"id"`
	Name   string         `db:"name" json:"name"`
	Type   ProviderType   `db:"type" json:"type"`
	Size   ProviderSize   `db:"size" json:"size"`
	Status ProviderStatus `db:"status" json:"status"`

	TrustScore        float64 `db:"trust_score" json:"trustScore"`
	CompletionRate    float64 `db:"completion_rate" json:"completionRate"`
	AverageRating     float64 `db:"average_rating" json:"averageRating"`
	ResponseTimeHours float64 `db:"response_time_hours" json:"responseTimeHours"`
	YearsActive       float64 `db:"years_active" json:"yearsActive"`
	FraudIncidents    int     `db:"fraud_incidents" json:"fraudIncidents"`

	Specializations []string `db:"specializations" json:"specializations"`

	GeographicFocus

	MaxActiveBeneficiaries  int       `db:"max_active_beneficiaries" json:"maxActiveBeneficiaries"`
	TotalAidedBeneficiaries int       `db:"total_aided_beneficiaries" json:"totalAidedBeneficiaries"`
	MonthlyFundCapCents     int64     `db:"monthly_fund_cap_cents" json:"monthlyFundCapCents"`
	CreatedAt               time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt               time.Time `db:"updated_at" json:"updatedAt"`
}

// Eligible reports whether the provider may take on new beneficiaries.
// Watchlisted providers stay eligible.
func (p *Provider) Eligible() bool {
	return p.Status != ProviderStatusSuspended && p.Status != ProviderStatusBanned
}

func (p *Provider) RemainingCapacity() int {
	remaining := p.MaxActiveBeneficiaries - p.TotalAidedBeneficiaries
	if remaining < 0 {
		return 0
	}
	return remaining
}
