package seed

import "aidmatch/pkg/types"

func Crises() []*types.Crisis {
	return []*types.Crisis{
		{
			ID:                 "crs_yL3C9sW6Ccx1Kad9QpKIuNlM",
			Title:              "Sunamganj flash floods",
			Category:           types.NeedCategoryDisasterRelief,
			Division:           "Sylhet",
			District:           "Sunamganj",
			Severity:           types.UrgencyCritical,
			FundingNeededCents: 5000000000,
			Status:             types.CrisisStatusActive,
		},
		{
			ID:                 "crs_dYJ3Xf2AO6hGDP877CRogm9Q",
			Title:              "Dhaka dengue outbreak",
			Category:           types.NeedCategoryMedical,
			Division:           "Dhaka",
			District:           "Dhaka",
			Severity:           types.UrgencyEmergency,
			FundingNeededCents: 2500000000,
			Status:             types.CrisisStatusActive,
		},
		{
			ID:                 "crs_lpW202AwLp7x1aQHX8ByaFth",
			Title:              "Satkhira cyclone recovery",
			Category:           types.NeedCategoryShelter,
			Division:           "Khulna",
			District:           "Satkhira",
			Severity:           types.UrgencyHigh,
			FundingNeededCents: 1800000000,
			Status:             types.CrisisStatusActive,
		},
	}
}
