package service

import (
	"context"
	"fmt"

	"aidmatch/internal/matching"
	"aidmatch/pkg/types"

	"github.com/sirupsen/logrus"
)

type ApplicationRequest struct {
	NIDNumber            string             `json:"nidNumber" validate:"required"`
	FullName             string             `json:"fullName" validate:"required"`
	Division             string             `json:"division" validate:"required"`
	District             string             `json:"district" validate:"required"`
	Upazila              string             `json:"upazila"`
	Latitude             float64            `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude            float64            `json:"longitude" validate:"gte=-180,lte=180"`
	NeedCategory         types.NeedCategory `json:"needCategory" validate:"required,oneof=medical education food shelter livelihood disaster_relief water_sanitation"`
	AmountRequestedCents int64              `json:"amountRequestedCents" validate:"gt=0"`
	Urgency              types.Urgency      `json:"urgency" validate:"required,oneof=medium high emergency critical"`
}

type ApplicationOutcome struct {
	Beneficiary *types.Beneficiary    `json:"beneficiary"`
	Fraud       *matching.FraudReport `json:"fraud"`
}

// SubmitApplication records a new aid application and screens it against
// the applications already on record.
func (s *Service) SubmitApplication(ctx context.Context, req *ApplicationRequest) (*ApplicationOutcome, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidRequest, err)
	}

	beneficiary := &types.Beneficiary{
		NIDNumber: req.NIDNumber,
		FullName:  req.FullName,
		Location: types.Location{
			Division:  req.Division,
			District:  req.District,
			Upazila:   req.Upazila,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		NeedCategory:         req.NeedCategory,
		AmountRequestedCents: req.AmountRequestedCents,
		Urgency:              req.Urgency,
		ApplicationStatus:    types.ApplicationStatusSubmitted,
		VerificationStatus:   types.VerificationStatusPending,
	}

	if err := s.beneficiaries.CreateBeneficiary(ctx, beneficiary); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"beneficiary_id": beneficiary.ID,
		"need_category":  beneficiary.NeedCategory,
		"urgency":        beneficiary.Urgency,
	}).Info("application submitted")

	report, err := s.ScreenBeneficiary(ctx, beneficiary.ID)
	if err != nil {
		return nil, err
	}

	return &ApplicationOutcome{Beneficiary: beneficiary, Fraud: report}, nil
}

func (s *Service) ActiveCrises(ctx context.Context) ([]*types.Crisis, error) {
	return s.crises.ActiveCrises(ctx)
}
