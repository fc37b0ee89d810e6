package types

// Priority is the importance bucket assigned to a feature.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Complexity is the estimated difficulty bucket for a feature or project.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// ValidComplexity reports whether s is one of the three known buckets.
func ValidComplexity(s string) bool {
	switch Complexity(s) {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// Feature is a scoped unit of work derived from the project input.
// Hours are always derived by the pipeline, never user supplied.
type Feature struct {
	Name           string     `json:"name"`
	Priority       Priority   `json:"priority"`
	Complexity     Complexity `json:"complexity"`
	EstimatedHours float64    `json:"estimatedHours"`
}

// StackChoice is one layer of the recommended technology stack.
type StackChoice struct {
	Framework string `json:"framework"`
	Reasoning string `json:"reasoning"`
}

// TechStackRecommendation groups the per-layer stack choices.
type TechStackRecommendation struct {
	Backend  *StackChoice `json:"backend,omitempty"`
	Frontend *StackChoice `json:"frontend,omitempty"`
	Database *StackChoice `json:"database,omitempty"`
}

// ArchitectureChoice names the recommended architectural pattern.
type ArchitectureChoice struct {
	Pattern   string `json:"pattern"`
	Reasoning string `json:"reasoning"`
}

// ResearchResult is the output of the research stage and the root input
// for every downstream derivation stage.
type ResearchResult struct {
	RequiredFeatures     []Feature               `json:"requiredFeatures"`
	RecommendedTechStack TechStackRecommendation `json:"recommendedTechStack"`
	Architecture         ArchitectureChoice      `json:"architecture"`
	EstimatedComplexity  Complexity              `json:"estimatedComplexity"`
	EstimatedTimeline    string                  `json:"estimatedTimeline"`
}

// TotalFeatureHours sums the derived hour estimates of all features.
func (r *ResearchResult) TotalFeatureHours() float64 {
	var total float64
	for _, f := range r.RequiredFeatures {
		total += f.EstimatedHours
	}
	return total
}
