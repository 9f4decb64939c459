package types

import "errors"

var (
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrDonationNotFound    = errors.New("donation not found")
	ErrCrisisNotFound      = errors.New("crisis not found")
	ErrAllocationNotFound  = errors.New("allocation not found")

	ErrInvalidRequest          = errors.New("invalid request")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrCrisisOverfunded        = errors.New("funding would exceed the amount needed")
	ErrProviderIneligible      = errors.New("provider is not eligible for new beneficiaries")
)
