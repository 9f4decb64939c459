package service

import (
	"context"
	"fmt"

	"aidmatch/internal/matching"
	"aidmatch/internal/store"
	"aidmatch/pkg/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// pendingStatuses are the application statuses still waiting on a provider.
var pendingStatuses = []types.ApplicationStatus{
	types.ApplicationStatusSubmitted,
	types.ApplicationStatusVerified,
}

type BatchOutcome struct {
	matching.BatchResult
	Persisted bool `json:"persisted"`
	Applied   int  `json:"applied"`
}

// RunBatch matches every pending beneficiary against the eligible
// providers. With persist set the assignments are written back in a
// single transaction.
func (s *Service) RunBatch(ctx context.Context, persist bool) (*BatchOutcome, error) {
	var (
		beneficiaries []*types.Beneficiary
		providers     []*types.Provider
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		beneficiaries, err = s.beneficiaries.BeneficiariesByStatus(gctx, pendingStatuses...)
		return err
	})
	g.Go(func() error {
		var err error
		providers, err = s.providers.EligibleProviders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load batch inputs: %w", err)
	}

	outcome := &BatchOutcome{BatchResult: s.matcher.BatchMatch(beneficiaries, providers)}
	if !persist {
		return outcome, nil
	}

	assignments := make([]store.Assignment, 0, len(outcome.Matches))
	for _, match := range outcome.Matches {
		assignments = append(assignments, store.Assignment{
			BeneficiaryID: match.BeneficiaryID,
			ProviderID:    match.ProviderID,
		})
	}

	applied, err := s.beneficiaries.ApplyAssignments(ctx, assignments)
	if err != nil {
		return nil, fmt.Errorf("failed to persist batch: %w", err)
	}

	outcome.Persisted = true
	outcome.Applied = applied

	s.logger.WithFields(logrus.Fields{
		"matched":   len(outcome.Matches),
		"unmatched": len(outcome.Unmatched),
		"applied":   applied,
	}).Info("batch match persisted")

	return outcome, nil
}

// MatchBeneficiary finds the best eligible provider for one beneficiary.
// A nil match means no provider cleared the threshold.
func (s *Service) MatchBeneficiary(ctx context.Context, beneficiaryID string) (*matching.Match, error) {
	var (
		beneficiary *types.Beneficiary
		providers   []*types.Provider
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		beneficiary, err = s.beneficiaries.Beneficiary(gctx, beneficiaryID)
		return err
	})
	g.Go(func() error {
		var err error
		providers, err = s.providers.EligibleProviders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.matcher.FindOptimalMatch(beneficiary, providers), nil
}

// SuggestProviders ranks providers for a donation towards its crisis.
func (s *Service) SuggestProviders(ctx context.Context, donationID string, opts matching.SuggestOptions) ([]matching.Suggestion, error) {
	donation, err := s.donations.Donation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	var (
		crisis    *types.Crisis
		providers []*types.Provider
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		crisis, err = s.crises.Crisis(gctx, donation.CrisisID)
		return err
	})
	g.Go(func() error {
		var err error
		providers, err = s.providers.EligibleProviders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.matcher.SuggestProviders(donation, crisis, providers, opts), nil
}
