package seed

import "aidmatch/pkg/types"

func Providers() []*types.Provider {
	return []*types.Provider{
		{
			ID:                      "prv_YVg7WN9oZwbsmL7vE7Obj6sP",
			Name:                    "Dhaka Community Health Trust",
			Type:                    types.ProviderTypeNGO,
			Size:                    types.ProviderSizeLarge,
			Status:                  types.ProviderStatusActive,
			CompletionRate:          94,
			AverageRating:           4.7,
			ResponseTimeHours:       3,
			YearsActive:             12,
			Specializations:         []string{"medical", "healthcare", "water_sanitation"},
			GeographicFocus:         types.GeographicFocus{Divisions: []string{"Dhaka", "Mymensingh"}, Districts: []string{"Dhaka", "Gazipur", "Narayanganj"}},
			MaxActiveBeneficiaries:  120,
			TotalAidedBeneficiaries: 40,
			MonthlyFundCapCents:     250000000,
		},
		{
			ID:                      "prv_hwVEH8KkYg4NQIql71Jf4Arh",
			Name:                    "Sylhet Flood Response Network",
			Type:                    types.ProviderTypeCommunity,
			Size:                    types.ProviderSizeMedium,
			Status:                  types.ProviderStatusActive,
			CompletionRate:          88,
			AverageRating:           4.4,
			ResponseTimeHours:       6,
			YearsActive:             5,
			Specializations:         []string{"disaster_relief", "shelter", "food"},
			GeographicFocus:         types.GeographicFocus{Divisions: []string{"Sylhet"}, Districts: []string{"Sylhet", "Sunamganj"}},
			MaxActiveBeneficiaries:  60,
			TotalAidedBeneficiaries: 35,
		},
		{
			ID:                      "prv_bfMInuqvjS4ZIDg7YogDZxog",
			Name:                    "Chattogram Learning Foundation",
			Type:                    types.ProviderTypeCharity,
			Size:                    types.ProviderSizeMedium,
			Status:                  types.ProviderStatusActive,
			CompletionRate:          91,
			AverageRating:           4.6,
			ResponseTimeHours:       18,
			YearsActive:             9,
			Specializations:         []string{"education", "scholarship"},
			GeographicFocus:         types.GeographicFocus{Divisions: []string{"Chattogram"}, Districts: []string{"Chattogram", "Cox's Bazar"}},
			MaxActiveBeneficiaries:  80,
			TotalAidedBeneficiaries: 20,
			MonthlyFundCapCents:     80000000,
		},
		{
			ID:                      "prv_HjTkmfbm93YrF0KRykm4Oa8D",
			Name:                    "Rajshahi Livelihood Cooperative",
			Type:                    types.ProviderTypeCommunity,
			Size:                    types.ProviderSizeSmall,
			Status:                  types.ProviderStatusWatchlist,
			CompletionRate:          72,
			AverageRating:           3.8,
			ResponseTimeHours:       30,
			YearsActive:             3,
			FraudIncidents:          1,
			Specializations:         []string{"livelihood", "food"},
			GeographicFocus:         types.GeographicFocus{Divisions: []string{"Rajshahi"}},
			MaxActiveBeneficiaries:  25,
			TotalAidedBeneficiaries: 22,
		},
		{
			ID:                      "prv_7x1oYx1FVImiurnHLbbyqXiK",
			Name:                    "Khulna Coastal Relief",
			Type:                    types.ProviderTypeGovernment,
			Size:                    types.ProviderSizeLarge,
			Status:                  types.ProviderStatusActive,
			CompletionRate:          85,
			AverageRating:           4.1,
			ResponseTimeHours:       10,
			YearsActive:             15,
			Specializations:         []string{"disaster_relief", "shelter", "water"},
			GeographicFocus:         types.GeographicFocus{Divisions: []string{"Khulna", "Barishal"}},
			MaxActiveBeneficiaries:  200,
			TotalAidedBeneficiaries: 150,
		},
		{
			ID:                      "prv_MRL7WRaed0yB00cqyOnSqqT7",
			Name:                    "Barishal Aid Collective",
			Type:                    types.ProviderTypeNGO,
			Size:                    types.ProviderSizeSmall,
			Status:                  types.ProviderStatusSuspended,
			CompletionRate:          40,
			AverageRating:           2.9,
			ResponseTimeHours:       48,
			YearsActive:             2,
			FraudIncidents:          3,
			Specializations:         []string{"food", "medical"},
			GeographicFocus:         types.GeographicFocus{Divisions: []string{"Barishal"}},
			MaxActiveBeneficiaries:  30,
			TotalAidedBeneficiaries: 5,
		},
	}
}
