package matching

import (
	"testing"

	"aidmatch/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestSpecializationScore(t *testing.T) {
	tests := []struct {
		name            string
		category        types.NeedCategory
		specializations []string
		want            int
	}{
		{"exact", types.NeedCategoryMedical, []string{"education", "medical"}, 100},
		{"alias", types.NeedCategoryMedical, []string{"Healthcare"}, 100},
		{"case insensitive", types.NeedCategoryFood, []string{" FOOD "}, 100},
		{"other specializations", types.NeedCategoryFood, []string{"education"}, 60},
		{"no specializations", types.NeedCategoryFood, nil, 30},
		{"empty category", "", []string{"medical"}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpecializationScore(tt.category, tt.specializations))
		})
	}
}

func TestGeographicScore(t *testing.T) {
	tests := []struct {
		name  string
		loc   types.Location
		focus types.GeographicFocus
		want  int
	}{
		{
			name:  "same division",
			loc:   types.Location{Division: "Dhaka", District: "Gazipur"},
			focus: types.GeographicFocus{Divisions: []string{"Dhaka"}},
			want:  100,
		},
		{
			name:  "old spelling",
			loc:   types.Location{Division: "Chittagong"},
			focus: types.GeographicFocus{Divisions: []string{"Chattogram"}},
			want:  100,
		},
		{
			name: "district containment",
			loc:  types.Location{Division: "Khulna", District: "Jessore"},
			focus: types.GeographicFocus{
				Divisions: []string{"Rangpur"},
				Districts: []string{"jessore"},
			},
			want: 85,
		},
		{
			name:  "neighbouring division",
			loc:   types.Location{Division: "Sylhet"},
			focus: types.GeographicFocus{Divisions: []string{"Mymensingh"}},
			want:  60,
		},
		{
			name:  "far away",
			loc:   types.Location{Division: "Rangpur"},
			focus: types.GeographicFocus{Divisions: []string{"Barishal"}},
			want:  20,
		},
		{
			name: "no focus",
			loc:  types.Location{Division: "Dhaka"},
			want: 20,
		},
		{
			name:  "missing beneficiary division",
			loc:   types.Location{},
			focus: types.GeographicFocus{Divisions: []string{"Dhaka"}},
			want:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GeographicScore(tt.loc, tt.focus))
		})
	}
}

func TestNeighbouringDivisionsAreSymmetric(t *testing.T) {
	for division, neighbours := range neighbouringDivisions {
		for _, n := range neighbours {
			assert.Contains(t, neighbouringDivisions[n], division, "%s borders %s", division, n)
		}
	}
}

func TestCapacityScore(t *testing.T) {
	tests := []struct {
		aided, max int
		want       int
	}{
		{10, 50, 100},
		{24, 50, 100},
		{25, 50, 85},
		{35, 50, 60},
		{44, 50, 60},
		{45, 50, 20},
		{49, 50, 20},
		{50, 50, 0},
		{60, 50, 0},
		{0, 0, 0},
		{0, -5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CapacityScore(tt.aided, tt.max), "aided=%d max=%d", tt.aided, tt.max)
	}
}

func TestResponseTimeScore(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{0, 100},
		{4, 100},
		{4.5, 80},
		{12, 80},
		{24, 60},
		{25, 40},
		{240, 40},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResponseTimeScore(tt.hours), "hours=%v", tt.hours)
	}
}
