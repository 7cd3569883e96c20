package verify

// Report strictly types the result of verifying an output file.
type Report struct {
	Source         string      `json:"source"`
	Types          int         `json:"types"`
	WithComponents int         `json:"with_components"`
	Matched        bool        `json:"matched"`
	Violations     []Violation `json:"violations"`
	// ViolationCount counts every violation, including those past the reporting limit.
	ViolationCount int `json:"violation_count"`
}

type Violation struct {
	TypeID int64  `json:"type_id"`
	Check  string `json:"check"`
	Detail string `json:"detail"`
}

const (
	CheckUniqueTypeID     = "unique_type_id"
	CheckComponentsEmpty  = "components_non_empty"
	CheckComponentsGroup  = "components_group"
	CheckComponentsParent = "components_parent"
)

// MaxReported caps how many violations a report lists.
const MaxReported = 50

func (r *Report) add(v Violation) {
	r.ViolationCount++
	r.Matched = false
	if len(r.Violations) < MaxReported {
		r.Violations = append(r.Violations, v)
	}
}
