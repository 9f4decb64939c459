package matching

import (
	"sort"

	"aidmatch/internal/utils"
	"aidmatch/pkg/types"
)

// AllocateDonation splits a donation's net amount across the beneficiaries
// matched to provider, most urgent first. Each beneficiary receives at most
// its outstanding need. When the provider has a monthly fund cap, the total
// is further limited to what is left of it after monthToDateCents. The
// returned allocations have no IDs yet.
func AllocateDonation(d *types.Donation, provider *types.Provider, beneficiaries []*types.Beneficiary, monthToDateCents int64) []*types.BeneficiaryAllocation {
	allocations := make([]*types.BeneficiaryAllocation, 0)
	if d == nil || provider == nil || provider.ID == "" {
		return allocations
	}

	budget := d.NetCents()
	if provider.MonthlyFundCapCents > 0 {
		left := provider.MonthlyFundCapCents - monthToDateCents
		if left < budget {
			budget = left
		}
	}
	if budget <= 0 {
		return allocations
	}

	eligible := make([]*types.Beneficiary, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		if b == nil || utils.PtrString(b.MatchedProviderID) != provider.ID {
			continue
		}
		if b.ApplicationStatus.Terminal() || b.OutstandingCents() == 0 {
			continue
		}
		eligible = append(eligible, b)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Urgency.Rank() > eligible[j].Urgency.Rank()
	})

	for _, b := range eligible {
		if budget == 0 {
			break
		}

		amount := b.OutstandingCents()
		if amount > budget {
			amount = budget
		}
		budget -= amount

		allocations = append(allocations, &types.BeneficiaryAllocation{
			DonationID:    d.ID,
			BeneficiaryID: b.ID,
			ProviderID:    provider.ID,
			AmountCents:   amount,
			Status:        types.AllocationStatusPending,
		})
	}

	return allocations
}
