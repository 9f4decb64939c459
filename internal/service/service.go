package service

import (
	"context"
	"io"
	"time"

	"aidmatch/internal/matching"
	"aidmatch/internal/store"
	"aidmatch/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type BeneficiaryStore interface {
	Beneficiary(ctx context.Context, id string) (*types.Beneficiary, error)
	Beneficiaries(ctx context.Context) ([]*types.Beneficiary, error)
	BeneficiariesByStatus(ctx context.Context, statuses ...types.ApplicationStatus) ([]*types.Beneficiary, error)
	BeneficiariesByProvider(ctx context.Context, providerID string) ([]*types.Beneficiary, error)
	CreateBeneficiary(ctx context.Context, beneficiary *types.Beneficiary) error
	UpdateApplicationStatus(ctx context.Context, id string, from, to types.ApplicationStatus) error
	ApplyAssignments(ctx context.Context, assignments []store.Assignment) (int, error)
}

type ProviderStore interface {
	Provider(ctx context.Context, id string) (*types.Provider, error)
	Providers(ctx context.Context) ([]*types.Provider, error)
	EligibleProviders(ctx context.Context) ([]*types.Provider, error)
	UpdateTrustScore(ctx context.Context, id string, score float64) error
}

type DonationStore interface {
	Donation(ctx context.Context, id string) (*types.Donation, error)
	CreateDonation(ctx context.Context, donation *types.Donation) error
	UpdateDonationStatus(ctx context.Context, id string, status types.DonationStatus) error
}

type CrisisStore interface {
	Crisis(ctx context.Context, id string) (*types.Crisis, error)
	ActiveCrises(ctx context.Context) ([]*types.Crisis, error)
}

type AllocationStore interface {
	Allocation(ctx context.Context, id string) (*types.BeneficiaryAllocation, error)
	AllocationsByDonation(ctx context.Context, donationID string) ([]*types.BeneficiaryAllocation, error)
	ProviderAllocatedSince(ctx context.Context, providerID string, since time.Time) (int64, error)
	VerifiedCentsForBeneficiary(ctx context.Context, beneficiaryID string) (int64, error)
	CreateAllocations(ctx context.Context, donationID string, allocations []*types.BeneficiaryAllocation) error
	UpdateAllocationStatus(ctx context.Context, id string, from, to types.AllocationStatus) error
	UpdateProof(ctx context.Context, id string, proof *types.DistributionProof, status types.AllocationStatus) error
}

type Repositories struct {
	Beneficiaries BeneficiaryStore
	Providers     ProviderStore
	Donations     DonationStore
	Crises        CrisisStore
	Allocations   AllocationStore
}

// Service loads records from the stores, runs them through the matcher and
// persists the outcome.
type Service struct {
	logger   logrus.FieldLogger
	matcher  *matching.Matcher
	validate *validator.Validate
	policy   matching.ProofPolicy
	now      func() time.Time

	beneficiaries BeneficiaryStore
	providers     ProviderStore
	donations     DonationStore
	crises        CrisisStore
	allocations   AllocationStore
}

func New(logger logrus.FieldLogger, matcher *matching.Matcher, policy matching.ProofPolicy, repos Repositories) *Service {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Service{
		logger:   logger,
		matcher:  matcher,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		policy:   policy,
		now:      time.Now,

		beneficiaries: repos.Beneficiaries,
		providers:     repos.Providers,
		donations:     repos.Donations,
		crises:        repos.Crises,
		allocations:   repos.Allocations,
	}
}
