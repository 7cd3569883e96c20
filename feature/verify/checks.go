package verify

import (
	"fmt"

	"type-extractor/feature/types/models"
)

// Check inspects every record and fills the report.
func Check(records []models.TypeRecord, componentGroups []int64) *Report {
	groups := make(map[int64]struct{}, len(componentGroups))
	for _, g := range componentGroups {
		groups[g] = struct{}{}
	}

	report := &Report{
		Types:      len(records),
		Matched:    true,
		Violations: []Violation{},
	}

	seen := make(map[int64]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.TypeID]; dup {
			report.add(Violation{TypeID: rec.TypeID, Check: CheckUniqueTypeID, Detail: "typeID appears more than once"})
		}
		seen[rec.TypeID] = struct{}{}

		if rec.Components == nil {
			continue
		}
		report.WithComponents++

		if len(rec.Components) == 0 {
			report.add(Violation{TypeID: rec.TypeID, Check: CheckComponentsEmpty, Detail: "components present but empty"})
		}
		if _, ok := groups[rec.GroupID]; !ok {
			report.add(Violation{
				TypeID: rec.TypeID,
				Check:  CheckComponentsGroup,
				Detail: fmt.Sprintf("group %d is not allow-listed for components", rec.GroupID),
			})
		}
		for _, c := range rec.Components {
			if c.TypeID != rec.TypeID {
				report.add(Violation{
					TypeID: rec.TypeID,
					Check:  CheckComponentsParent,
					Detail: fmt.Sprintf("component for material %d names parent %d", c.MaterialTypeID, c.TypeID),
				})
			}
		}
	}
	return report
}
