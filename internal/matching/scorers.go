package matching

import (
	"strings"

	"aidmatch/internal/utils"
	"aidmatch/pkg/types"
)

// specializationAliases maps need categories, and the loose names seen in
// applications, onto the specialization a provider would list.
var specializationAliases = map[string]string{
	"healthcare":    string(types.NeedCategoryMedical),
	"health":        string(types.NeedCategoryMedical),
	"nutrition":     string(types.NeedCategoryFood),
	"food_security": string(types.NeedCategoryFood),
	"housing":       string(types.NeedCategoryShelter),
	"schooling":     string(types.NeedCategoryEducation),
	"employment":    string(types.NeedCategoryLivelihood),
	"disaster":      string(types.NeedCategoryDisasterRelief),
	"flood":         string(types.NeedCategoryDisasterRelief),
	"wash":          string(types.NeedCategoryWater),
	"water":         string(types.NeedCategoryWater),
}

// neighbouringDivisions lists the divisions of Bangladesh that share a
// border. Keys and values are lower case.
var neighbouringDivisions = map[string][]string{
	"dhaka":      {"mymensingh", "sylhet", "chattogram", "barishal", "khulna", "rajshahi"},
	"chattogram": {"dhaka", "sylhet", "barishal"},
	"rajshahi":   {"rangpur", "mymensingh", "dhaka", "khulna"},
	"khulna":     {"rajshahi", "dhaka", "barishal"},
	"barishal":   {"khulna", "dhaka", "chattogram"},
	"sylhet":     {"mymensingh", "dhaka", "chattogram"},
	"rangpur":    {"rajshahi", "mymensingh"},
	"mymensingh": {"rangpur", "rajshahi", "dhaka", "sylhet"},
}

var divisionSpellings = map[string]string{
	"chittagong": "chattogram",
	"barisal":    "barishal",
	"jessore":    "khulna",
}

func normalizeDivision(division string) string {
	d := strings.ToLower(strings.TrimSpace(division))
	if canonical, ok := divisionSpellings[d]; ok {
		return canonical
	}
	return d
}

func normalizeSpecialization(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if mapped, ok := specializationAliases[key]; ok {
		return mapped
	}
	return key
}

// SpecializationScore rates how well a provider's specializations cover a
// need category.
func SpecializationScore(category types.NeedCategory, specializations []string) int {
	want := normalizeSpecialization(string(category))

	for _, s := range specializations {
		if want != "" && normalizeSpecialization(s) == want {
			return 100
		}
	}

	if len(specializations) > 0 {
		return 60
	}
	return 30
}

// GeographicScore rates how well a provider's operating area covers a
// location: same division, then district, then a neighbouring division.
func GeographicScore(loc types.Location, focus types.GeographicFocus) int {
	division := normalizeDivision(loc.Division)

	for _, d := range focus.Divisions {
		if division != "" && normalizeDivision(d) == division {
			return 100
		}
	}

	if utils.ContainsFold(focus.Districts, loc.District) {
		return 85
	}

	for _, d := range focus.Divisions {
		for _, near := range neighbouringDivisions[division] {
			if normalizeDivision(d) == near {
				return 60
			}
		}
	}

	return 20
}

// CapacityScore rates a provider's headroom from its utilisation.
func CapacityScore(totalAided, maxActive int) int {
	if maxActive <= 0 {
		return 0
	}

	utilization := float64(totalAided) / float64(maxActive)
	switch {
	case utilization < 0.5:
		return 100
	case utilization < 0.7:
		return 85
	case utilization < 0.9:
		return 60
	case utilization < 1:
		return 20
	}
	return 0
}

func ResponseTimeScore(hours float64) int {
	switch {
	case hours <= 4:
		return 100
	case hours <= 12:
		return 80
	case hours <= 24:
		return 60
	}
	return 40
}
