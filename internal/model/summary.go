package model

// Summary is the canonical structured requirements document produced by
// extraction. List fields are never nil: an unpopulated section is an empty
// list, so serialized summaries always carry every key.
type Summary struct {
	Overview      string   `json:"overview"`
	Functional    []string `json:"functional"`
	NonFunctional []string `json:"nonFunctional"`
	Stakeholders  []string `json:"stakeholders"`
	UserStories   []string `json:"userStories"`
	Constraints   []string `json:"constraints"`
	Risks         []string `json:"risks"`
	Timeline      string   `json:"timeline"`
	CostEstimate  string   `json:"costEstimate"`
	Summary       string   `json:"summary"`
}

// EmptySummary returns a Summary with every list initialized and every string
// empty. This is the soft-failure value returned when extraction cannot
// produce content.
func EmptySummary() Summary {
	return Summary{
		Functional:    []string{},
		NonFunctional: []string{},
		Stakeholders:  []string{},
		UserStories:   []string{},
		Constraints:   []string{},
		Risks:         []string{},
	}
}

// IsEmpty reports whether the summary carries no extracted content.
// Callers use this to detect a soft-failed extraction.
func (s Summary) IsEmpty() bool {
	return len(s.Functional) == 0 &&
		len(s.NonFunctional) == 0 &&
		len(s.Stakeholders) == 0 &&
		len(s.UserStories) == 0 &&
		len(s.Constraints) == 0 &&
		len(s.Risks) == 0 &&
		s.Overview == "" &&
		s.Timeline == "" &&
		s.CostEstimate == "" &&
		s.Summary == ""
}
