package service

import (
	"context"

	"aidmatch/internal/matching"
	"aidmatch/pkg/types"

	"golang.org/x/sync/errgroup"
)

// ScreenBeneficiary runs the fraud checks for one beneficiary against every
// application on record.
func (s *Service) ScreenBeneficiary(ctx context.Context, beneficiaryID string) (*matching.FraudReport, error) {
	var (
		target *types.Beneficiary
		all    []*types.Beneficiary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		target, err = s.beneficiaries.Beneficiary(gctx, beneficiaryID)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = s.beneficiaries.Beneficiaries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The stored copy of the target is a separate record from the one in
	// all; screen the collection's own entry so it is counted once.
	for _, b := range all {
		if b.ID == target.ID {
			target = b
			break
		}
	}

	report := matching.DetectFraud(target, all)
	if report.Suspicious() {
		s.logger.WithField("beneficiary_id", target.ID).
			WithField("risk", report.RiskLevel).
			Warn("beneficiary flagged")
	}

	return &report, nil
}

// ScanFraud reports on every application. With suspiciousOnly set, clean
// reports are dropped.
func (s *Service) ScanFraud(ctx context.Context, suspiciousOnly bool) ([]matching.FraudReport, error) {
	all, err := s.beneficiaries.Beneficiaries(ctx)
	if err != nil {
		return nil, err
	}

	reports := matching.ScanFraud(all)
	if !suspiciousOnly {
		return reports, nil
	}

	flagged := make([]matching.FraudReport, 0)
	for _, report := range reports {
		if report.Suspicious() {
			flagged = append(flagged, report)
		}
	}

	return flagged, nil
}
