package types

// AgentDefinition describes one staffed role on the generated team.
type AgentDefinition struct {
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	Responsibilities   []string `json:"responsibilities"`
	Skills             []string `json:"skills"`
	WorkloadPercentage int      `json:"workloadPercentage"`
	Priority           Priority `json:"priority"`
	EstimatedHours     float64  `json:"estimatedHours"`
}

// AgentTeam is the composed team with its execution ordering.
type AgentTeam struct {
	Agents              []AgentDefinition `json:"agents"`
	TotalAgents         int               `json:"totalAgents"`
	EstimatedTotalHours float64           `json:"estimatedTotalHours"`
	RecommendedSequence []string          `json:"recommendedSequence"`
}
