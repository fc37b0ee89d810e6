package types

import "time"

// DiagramSet holds the rendered Mermaid sources for a plan.
type DiagramSet struct {
	SystemContext      string   `json:"systemContext"`
	Container          string   `json:"container"`
	EntityRelationship string   `json:"entityRelationship"`
	Sequences          []string `json:"sequences"`
}

// StageTiming records how long one pipeline stage took.
type StageTiming struct {
	Stage    string        `json:"stage"`
	Duration time.Duration `json:"duration"`
}

// PlanPackage is the aggregate output of one pipeline run: every stage
// result plus the rendered documents and the quality verdict.
type PlanPackage struct {
	RunID          string               `json:"runId"`
	GeneratedAt    time.Time            `json:"generatedAt"`
	Summary        ProjectSummary       `json:"summary"`
	Enrichment     *InputEnrichment     `json:"enrichment,omitempty"`
	Clarifications []ClarificationQA    `json:"clarifications,omitempty"`
	Research       *ResearchResult      `json:"research"`
	Team           *AgentTeam           `json:"team"`
	Tools          *ToolRecommendations `json:"tools"`
	ADRs           []ADR                `json:"adrs"`
	Diagrams       DiagramSet           `json:"diagrams"`
	Costs          *CostEstimate        `json:"costs"`
	Risks          []DependencyRisk     `json:"risks"`
	Document       string               `json:"-"`
	Decisions      string               `json:"-"`
	Quality        *QualityReport       `json:"quality"`
	Timings        []StageTiming        `json:"timings"`
}
