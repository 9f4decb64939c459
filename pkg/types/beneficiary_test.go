package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationStatusSubmitted, ApplicationStatusVerified, true},
		{ApplicationStatusVerified, ApplicationStatusMatched, true},
		{ApplicationStatusMatched, ApplicationStatusInProgress, true},
		{ApplicationStatusInProgress, ApplicationStatusCompleted, true},
		{ApplicationStatusSubmitted, ApplicationStatusMatched, true},
		{ApplicationStatusMatched, ApplicationStatusVerified, false},
		{ApplicationStatusMatched, ApplicationStatusMatched, false},
		{ApplicationStatusVerified, ApplicationStatusRejected, true},
		{ApplicationStatusCompleted, ApplicationStatusRejected, false},
		{ApplicationStatusRejected, ApplicationStatusVerified, false},
		{"unknown", ApplicationStatusVerified, false},
		{ApplicationStatusSubmitted, "unknown", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanAdvance(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBeneficiaryAdvance(t *testing.T) {
	b := &Beneficiary{ApplicationStatus: ApplicationStatusVerified}

	require.NoError(t, b.Advance(ApplicationStatusMatched))
	assert.Equal(t, ApplicationStatusMatched, b.ApplicationStatus)

	err := b.Advance(ApplicationStatusSubmitted)
	assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
	assert.Equal(t, ApplicationStatusMatched, b.ApplicationStatus)
}

func TestUrgencyRank(t *testing.T) {
	assert.Equal(t, 4, UrgencyCritical.Rank())
	assert.Equal(t, 3, UrgencyEmergency.Rank())
	assert.Equal(t, 2, UrgencyHigh.Rank())
	assert.Equal(t, 1, UrgencyMedium.Rank())
	assert.Equal(t, 0, Urgency("low").Rank())
}

func TestOutstandingCents(t *testing.T) {
	b := &Beneficiary{AmountRequestedCents: 1000, AmountReceivedCents: 400}
	assert.Equal(t, int64(600), b.OutstandingCents())

	b.AmountReceivedCents = 1200
	assert.Zero(t, b.OutstandingCents())
}

func TestProviderCapacityAndEligibility(t *testing.T) {
	p := &Provider{Status: ProviderStatusWatchlist, MaxActiveBeneficiaries: 50, TotalAidedBeneficiaries: 10}
	assert.Equal(t, 40, p.RemainingCapacity())
	assert.True(t, p.Eligible())

	p.TotalAidedBeneficiaries = 60
	assert.Zero(t, p.RemainingCapacity())

	p.Status = ProviderStatusBanned
	assert.False(t, p.Eligible())
}

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		amount, want int64
	}{
		{100000, 2500},
		{1500000, 37500},
		{20, 1},
		{19, 0},
		{0, 0},
		{-100, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlatformFee(tt.amount), "amount=%d", tt.amount)
	}
}

func TestCrisisCanAccept(t *testing.T) {
	c := &Crisis{FundingNeededCents: 1000, FundingReceivedCents: 900}
	assert.True(t, c.CanAccept(100))
	assert.False(t, c.CanAccept(101))
}
