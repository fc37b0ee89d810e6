package types

// VagueTerm is one occurrence of non-committal language in the document.
type VagueTerm struct {
	Term       string `json:"term"`
	Location   string `json:"location"`
	Suggestion string `json:"suggestion"`
}

// QualityReport scores an assembled build specification document.
type QualityReport struct {
	OverallScore      int            `json:"overallScore"`
	SectionScores     map[string]int `json:"sectionScores"`
	Errors            []string       `json:"errors"`
	Warnings          []string       `json:"warnings"`
	Suggestions       []string       `json:"suggestions"`
	VagueTermsFound   []VagueTerm    `json:"vagueTermsFound"`
	MissingDetails    []string       `json:"missingDetails"`
	PassedQualityGate bool           `json:"passedQualityGate"`
	RequiredFixes     []string       `json:"requiredFixes"`
}
