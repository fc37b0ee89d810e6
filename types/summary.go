// Package types defines the data model shared by every pipeline stage.
// All derived entities are created once per run and never mutated.
package types

// TechHints carries technology preferences stated in the project input.
type TechHints struct {
	Backend  []string `json:"backend,omitempty" yaml:"backend,omitempty"`
	Frontend []string `json:"frontend,omitempty" yaml:"frontend,omitempty"`
	Database string   `json:"database,omitempty" yaml:"database,omitempty"`
}

// ProjectSummary is the normalized project description handed to the
// pipeline by the input parser. It is immutable from the pipeline's view.
type ProjectSummary struct {
	ProjectName string    `json:"projectName" yaml:"projectName"`
	Description string    `json:"description" yaml:"description"`
	Features    []string  `json:"features,omitempty" yaml:"features,omitempty"`
	TechStack   TechHints `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	Timeline    string    `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	TeamSize    string    `json:"teamSize,omitempty" yaml:"teamSize,omitempty"`
	Constraints []string  `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// InputEnrichment holds optional non-functional requirements and
// preferences collected upstream to sharpen heuristic output.
type InputEnrichment struct {
	// FeaturePriorities maps a feature name (matched by substring) to an
	// explicit priority that overrides keyword scoring.
	FeaturePriorities map[string]Priority `json:"featurePriorities,omitempty" yaml:"featurePriorities,omitempty"`

	Performance   string `json:"performance,omitempty" yaml:"performance,omitempty"`
	Security      string `json:"security,omitempty" yaml:"security,omitempty"`
	Scalability   string `json:"scalability,omitempty" yaml:"scalability,omitempty"`
	Accessibility string `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`

	Personas []string `json:"personas,omitempty" yaml:"personas,omitempty"`

	// ArchitectureStyle, when set, wins over the keyword architecture rule.
	ArchitectureStyle string `json:"architectureStyle,omitempty" yaml:"architectureStyle,omitempty"`

	Budget          string `json:"budget,omitempty" yaml:"budget,omitempty"`
	ComplexityTier  string `json:"complexityTier,omitempty" yaml:"complexityTier,omitempty"`
	ScalabilityTier string `json:"scalabilityTier,omitempty" yaml:"scalabilityTier,omitempty"`
}

// IsZero reports whether no enrichment data was supplied at all.
func (e *InputEnrichment) IsZero() bool {
	if e == nil {
		return true
	}
	return len(e.FeaturePriorities) == 0 &&
		e.Performance == "" && e.Security == "" && e.Scalability == "" &&
		e.Accessibility == "" && len(e.Personas) == 0 &&
		e.ArchitectureStyle == "" && e.Budget == "" &&
		e.ComplexityTier == "" && e.ScalabilityTier == ""
}

// ClarificationQA is one question/answer pair collected by the upstream
// clarification flow. Skipped questions are kept for the decisions record.
type ClarificationQA struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer,omitempty" yaml:"answer,omitempty"`
	Skipped  bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}
