package verify

import (
	"testing"

	"type-extractor/feature/types"
	"type-extractor/feature/types/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func archon() models.TypeRecord {
	return models.TypeRecord{
		TypeID:     11567,
		GroupID:    547,
		TypeName:   "Archon",
		Components: []models.ComponentEntry{{TypeID: 11567, MaterialTypeID: 34, Quantity: 500000}},
	}
}

func TestCheck_Clean(t *testing.T) {
	records := []models.TypeRecord{
		{TypeID: 34, GroupID: 18, TypeName: "Tritanium", Market: true},
		archon(),
	}

	report := Check(records, types.DefaultComponentGroups)
	assert.True(t, report.Matched)
	assert.Equal(t, 2, report.Types)
	assert.Equal(t, 1, report.WithComponents)
	assert.Empty(t, report.Violations)
}

func TestCheck_Violations(t *testing.T) {
	rifter := models.TypeRecord{
		TypeID:     587,
		GroupID:    25,
		TypeName:   "Rifter",
		Components: []models.ComponentEntry{{TypeID: 34, MaterialTypeID: 34, Quantity: 28000}},
	}
	empty := models.TypeRecord{TypeID: 671, GroupID: 30, TypeName: "Erebus", Components: []models.ComponentEntry{}}

	report := Check([]models.TypeRecord{archon(), archon(), rifter, empty}, types.DefaultComponentGroups)

	want := []Violation{
		{TypeID: 11567, Check: CheckUniqueTypeID, Detail: "typeID appears more than once"},
		{TypeID: 587, Check: CheckComponentsGroup, Detail: "group 25 is not allow-listed for components"},
		{TypeID: 587, Check: CheckComponentsParent, Detail: "component for material 34 names parent 34"},
		{TypeID: 671, Check: CheckComponentsEmpty, Detail: "components present but empty"},
	}
	if diff := cmp.Diff(want, report.Violations); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, report.Matched)
	assert.Equal(t, 4, report.ViolationCount)
}

func TestCheck_ReportingLimit(t *testing.T) {
	records := make([]models.TypeRecord, MaxReported+10)
	for i := range records {
		records[i] = models.TypeRecord{TypeID: 1}
	}

	report := Check(records, nil)
	assert.Len(t, report.Violations, MaxReported)
	assert.Equal(t, len(records)-1, report.ViolationCount)
}
