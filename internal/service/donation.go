package service

import (
	"context"
	"fmt"
	"time"

	"aidmatch/internal/matching"
	"aidmatch/internal/utils"
	"aidmatch/pkg/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type CreateDonationRequest struct {
	DonorID              string   `json:"donorId" validate:"required"`
	CrisisID             string   `json:"crisisId" validate:"required"`
	AmountCents          int64    `json:"amountCents" validate:"gt=0"`
	PreferredProviderIDs []string `json:"preferredProviderIds" validate:"omitempty,dive,required"`
	ExcludedProviderIDs  []string `json:"excludedProviderIds" validate:"omitempty,dive,required"`
	PreferredDivisions   []string `json:"preferredDivisions" validate:"omitempty,dive,required"`
	MinTrustScore        float64  `json:"minTrustScore" validate:"gte=0,lte=100"`
}

// CreateDonation records a donation towards a crisis, charging the platform
// fee and adding the gross amount to the crisis funding.
func (s *Service) CreateDonation(ctx context.Context, req *CreateDonationRequest) (*types.Donation, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidRequest, err)
	}

	for _, id := range req.PreferredProviderIDs {
		if utils.ContainsString(req.ExcludedProviderIDs, id) {
			return nil, fmt.Errorf("%w: provider %s is both preferred and excluded", types.ErrInvalidRequest, id)
		}
	}

	donation := &types.Donation{
		DonorID:     req.DonorID,
		CrisisID:    req.CrisisID,
		AmountCents: req.AmountCents,
		FeeCents:    types.PlatformFee(req.AmountCents),
		ProviderPreference: types.ProviderPreference{
			PreferredProviderIDs: nonNil(req.PreferredProviderIDs),
			ExcludedProviderIDs:  nonNil(req.ExcludedProviderIDs),
			PreferredDivisions:   nonNil(req.PreferredDivisions),
			MinTrustScore:        req.MinTrustScore,
		},
		Status: types.DonationStatusPending,
	}

	if err := s.donations.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"donation_id":  donation.ID,
		"crisis_id":    donation.CrisisID,
		"amount_cents": donation.AmountCents,
		"fee_cents":    donation.FeeCents,
	}).Info("donation created")

	return donation, nil
}

// AllocateDonation splits a pending donation across the beneficiaries the
// provider is serving.
func (s *Service) AllocateDonation(ctx context.Context, donationID, providerID string) (*types.Donation, error) {
	donation, err := s.donations.Donation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if donation.Status != types.DonationStatusPending {
		return nil, fmt.Errorf("%w: donation %s is %s", types.ErrInvalidStatusTransition, donation.ID, donation.Status)
	}

	if utils.ContainsString(donation.ExcludedProviderIDs, providerID) {
		return nil, fmt.Errorf("%w: provider %s is excluded by the donor", types.ErrProviderIneligible, providerID)
	}

	var (
		provider      *types.Provider
		beneficiaries []*types.Beneficiary
		monthToDate   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		provider, err = s.providers.Provider(gctx, providerID)
		return err
	})
	g.Go(func() error {
		var err error
		beneficiaries, err = s.beneficiaries.BeneficiariesByProvider(gctx, providerID)
		return err
	})
	g.Go(func() error {
		var err error
		monthToDate, err = s.allocations.ProviderAllocatedSince(gctx, providerID, startOfMonth(s.now()))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !provider.Eligible() {
		return nil, fmt.Errorf("%w: provider %s is %s", types.ErrProviderIneligible, provider.ID, provider.Status)
	}

	allocations := matching.AllocateDonation(donation, provider, beneficiaries, monthToDate)
	if len(allocations) == 0 {
		s.logger.WithField("donation_id", donation.ID).
			WithField("provider_id", provider.ID).
			Warn("nothing to allocate")
		donation.Allocations = allocations
		return donation, nil
	}

	if err := s.allocations.CreateAllocations(ctx, donation.ID, allocations); err != nil {
		return nil, err
	}

	donation.Status = types.DonationStatusAllocated
	donation.Allocations = allocations

	return donation, nil
}

type ProofOutcome struct {
	Allocation *types.BeneficiaryAllocation `json:"allocation"`
	Verdict    matching.ProofVerdict        `json:"verdict"`
}

// MarkDistributed records that the provider has handed a pending
// allocation over to its beneficiary.
func (s *Service) MarkDistributed(ctx context.Context, allocationID string) (*types.BeneficiaryAllocation, error) {
	allocation, err := s.allocations.Allocation(ctx, allocationID)
	if err != nil {
		return nil, err
	}

	if allocation.Status != types.AllocationStatusPending {
		return nil, fmt.Errorf("%w: allocation %s is already %s", types.ErrInvalidStatusTransition, allocation.ID, allocation.Status)
	}

	err = s.allocations.UpdateAllocationStatus(ctx, allocation.ID, types.AllocationStatusPending, types.AllocationStatusDistributed)
	if err != nil {
		return nil, err
	}

	allocation.Status = types.AllocationStatusDistributed

	s.logger.WithField("allocation_id", allocation.ID).Info("allocation distributed")

	return allocation, nil
}

// SubmitProof reviews distribution proof for an allocation. Approved proof
// verifies the allocation, anything else disputes it. A beneficiary whose
// verified allocations cover the request is completed, as is a donation
// whose allocations are all verified.
func (s *Service) SubmitProof(ctx context.Context, allocationID string, proof *types.DistributionProof) (*ProofOutcome, error) {
	if err := s.validate.StructCtx(ctx, proof); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidRequest, err)
	}

	allocation, err := s.allocations.Allocation(ctx, allocationID)
	if err != nil {
		return nil, err
	}

	if allocation.Status != types.AllocationStatusPending && allocation.Status != types.AllocationStatusDistributed {
		return nil, fmt.Errorf("%w: allocation %s is already %s", types.ErrInvalidStatusTransition, allocation.ID, allocation.Status)
	}

	beneficiary, err := s.beneficiaries.Beneficiary(ctx, allocation.BeneficiaryID)
	if err != nil {
		return nil, err
	}

	verdict := matching.ReviewProof(proof, beneficiary, s.policy)
	proof.GPSValidated = verdict.GPSOK
	proof.SubmittedAt = s.now()

	status := types.AllocationStatusDisputed
	if verdict.Approved {
		status = types.AllocationStatusVerified
	}

	if err := s.allocations.UpdateProof(ctx, allocation.ID, proof, status); err != nil {
		return nil, err
	}

	allocation.Proof = proof
	allocation.Status = status

	entry := s.logger.WithFields(logrus.Fields{
		"allocation_id": allocation.ID,
		"status":        status,
	})
	if !verdict.Approved {
		entry.WithField("reasons", verdict.Reasons).Warn("distribution proof disputed")
		return &ProofOutcome{Allocation: allocation, Verdict: verdict}, nil
	}
	entry.Info("distribution proof verified")

	if err := s.completeBeneficiary(ctx, beneficiary); err != nil {
		return nil, err
	}

	if err := s.completeDonation(ctx, allocation.DonationID); err != nil {
		return nil, err
	}

	return &ProofOutcome{Allocation: allocation, Verdict: verdict}, nil
}

func (s *Service) completeBeneficiary(ctx context.Context, beneficiary *types.Beneficiary) error {
	if !types.CanAdvance(beneficiary.ApplicationStatus, types.ApplicationStatusCompleted) {
		return nil
	}

	verified, err := s.allocations.VerifiedCentsForBeneficiary(ctx, beneficiary.ID)
	if err != nil {
		return err
	}

	if verified < beneficiary.AmountRequestedCents {
		return nil
	}

	from := beneficiary.ApplicationStatus
	err = s.beneficiaries.UpdateApplicationStatus(ctx, beneficiary.ID, from, types.ApplicationStatusCompleted)
	if err != nil {
		return err
	}
	beneficiary.ApplicationStatus = types.ApplicationStatusCompleted

	s.logger.WithFields(logrus.Fields{
		"beneficiary_id": beneficiary.ID,
		"verified_cents": verified,
	}).Info("beneficiary completed")

	return nil
}

func (s *Service) completeDonation(ctx context.Context, donationID string) error {
	allocations, err := s.allocations.AllocationsByDonation(ctx, donationID)
	if err != nil {
		return err
	}

	for _, allocation := range allocations {
		if allocation.Status != types.AllocationStatusVerified {
			return nil
		}
	}

	return s.donations.UpdateDonationStatus(ctx, donationID, types.DonationStatusCompleted)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
