// Package team composes the staffed agent team for a planned project.
// Composition is a pure function of the project summary and the research
// result.
package team

import (
	"math"
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// Canonical agent names, also the fixed execution precedence.
const (
	AgentPlanning = "Planning"
	AgentDatabase = "Database"
	AgentBackend  = "Backend"
	AgentFrontend = "Frontend"
	AgentQA       = "QA"
	AgentDevOps   = "DevOps"
)

// sequencePrecedence is the fixed order the recommended sequence walks.
var sequencePrecedence = []string{
	AgentPlanning, AgentDatabase, AgentBackend, AgentFrontend, AgentQA, AgentDevOps,
}

var (
	backendKeywords  = []string{"api", "auth", "data", "payment", "backend", "notification", "search", "integration"}
	frontendKeywords = []string{"ui", "display", "view", "dashboard", "form", "page", "frontend", "real-time"}
	databaseKeywords = []string{"data", "database", "storage", "crud"}
)

// Hour constants gated by overall complexity (low, medium, high).
var (
	planningHours = map[types.Complexity]float64{
		types.ComplexityLow: 8, types.ComplexityMedium: 12, types.ComplexityHigh: 20,
	}
	qaHours = map[types.Complexity]float64{
		types.ComplexityLow: 8, types.ComplexityMedium: 14, types.ComplexityHigh: 20,
	}
	databaseHours = map[types.Complexity]float64{
		types.ComplexityLow: 8, types.ComplexityMedium: 12, types.ComplexityHigh: 20,
	}
	devOpsHours = map[types.Complexity]float64{
		types.ComplexityLow: 8, types.ComplexityMedium: 12, types.ComplexityHigh: 16,
	}
)

const (
	backendFallbackPerFeature  = 8
	frontendFallbackPerFeature = 6
)

// Compose builds the agent team. Planning and QA always exist; the other
// roles are gated on the research result.
func Compose(summary types.ProjectSummary, research *types.ResearchResult) *types.AgentTeam {
	complexity := research.EstimatedComplexity
	var agents []types.AgentDefinition

	agents = append(agents, types.AgentDefinition{
		Name:             AgentPlanning,
		Role:             "Project planning and requirements breakdown",
		Responsibilities: []string{"Decompose features into tasks", "Sequence the delivery milestones", "Track scope against the timeline"},
		Skills:           []string{"estimation", "requirements analysis", "roadmapping"},
		Priority:         types.PriorityCritical,
		EstimatedHours:   planningHours[complexity],
	})

	if includeDatabaseAgent(research) {
		agents = append(agents, types.AgentDefinition{
			Name:             AgentDatabase,
			Role:             "Schema design and data layer",
			Responsibilities: []string{"Design the relational schema", "Define migrations", "Tune indexes and queries"},
			Skills:           []string{"sql", "data modeling", "migrations"},
			Priority:         types.PriorityHigh,
			EstimatedHours:   databaseHours[complexity],
		})
	}

	if research.RecommendedTechStack.Backend != nil {
		agents = append(agents, types.AgentDefinition{
			Name:             AgentBackend,
			Role:             "Server-side implementation with " + research.RecommendedTechStack.Backend.Framework,
			Responsibilities: []string{"Implement API endpoints", "Enforce auth and validation", "Integrate external services"},
			Skills:           []string{research.RecommendedTechStack.Backend.Framework, "api design", "testing"},
			Priority:         types.PriorityHigh,
			EstimatedHours:   roleHours(research.RequiredFeatures, backendKeywords, backendFallbackPerFeature),
		})
	}

	if research.RecommendedTechStack.Frontend != nil {
		agents = append(agents, types.AgentDefinition{
			Name:             AgentFrontend,
			Role:             "Client-side implementation with " + research.RecommendedTechStack.Frontend.Framework,
			Responsibilities: []string{"Build the UI components", "Wire client state to the API", "Handle loading and error states"},
			Skills:           []string{research.RecommendedTechStack.Frontend.Framework, "component design", "accessibility"},
			Priority:         types.PriorityMedium,
			EstimatedHours:   roleHours(research.RequiredFeatures, frontendKeywords, frontendFallbackPerFeature),
		})
	}

	agents = append(agents, types.AgentDefinition{
		Name:             AgentQA,
		Role:             "Quality assurance and acceptance testing",
		Responsibilities: []string{"Write the test plan", "Automate regression coverage", "Verify acceptance criteria"},
		Skills:           []string{"test automation", "exploratory testing"},
		Priority:         types.PriorityHigh,
		EstimatedHours:   qaHours[complexity],
	})

	if includeDevOpsAgent(summary, complexity) {
		agents = append(agents, types.AgentDefinition{
			Name:             AgentDevOps,
			Role:             "Deployment, environments and observability",
			Responsibilities: []string{"Set up CI/CD", "Provision environments", "Configure monitoring and alerts"},
			Skills:           []string{"ci/cd", "infrastructure as code", "monitoring"},
			Priority:         types.PriorityMedium,
			EstimatedHours:   devOpsHours[complexity],
		})
	}

	var totalHours float64
	for _, a := range agents {
		totalHours += a.EstimatedHours
	}
	for i := range agents {
		if totalHours > 0 {
			agents[i].WorkloadPercentage = int(math.Round(agents[i].EstimatedHours / totalHours * 100))
		}
	}

	return &types.AgentTeam{
		Agents:              agents,
		TotalAgents:         len(agents),
		EstimatedTotalHours: totalHours,
		RecommendedSequence: buildSequence(agents),
	}
}

// includeDatabaseAgent gates the database role: high overall complexity or
// at least three data-flavored features.
func includeDatabaseAgent(research *types.ResearchResult) bool {
	if research.EstimatedComplexity == types.ComplexityHigh {
		return true
	}
	count := 0
	for _, f := range research.RequiredFeatures {
		if containsAny(strings.ToLower(f.Name), databaseKeywords) {
			count++
		}
	}
	return count >= 3
}

// includeDevOpsAgent gates the devops role: never for MVP/prototype
// projects, otherwise on a production/deployment mention or high
// complexity.
func includeDevOpsAgent(summary types.ProjectSummary, complexity types.Complexity) bool {
	desc := strings.ToLower(summary.Description)
	if strings.Contains(desc, "mvp") || strings.Contains(desc, "prototype") {
		return false
	}
	return strings.Contains(desc, "production") || strings.Contains(desc, "deploy") || complexity == types.ComplexityHigh
}

// roleHours sums the hours of features matching the role's keyword set,
// falling back to a per-feature multiplier when nothing matches.
func roleHours(features []types.Feature, keywords []string, fallbackPerFeature float64) float64 {
	var sum float64
	matched := false
	for _, f := range features {
		if containsAny(strings.ToLower(f.Name), keywords) {
			sum += f.EstimatedHours
			matched = true
		}
	}
	if !matched {
		return float64(len(features)) * fallbackPerFeature
	}
	return sum
}

// buildSequence walks the fixed precedence list and keeps present agents.
func buildSequence(agents []types.AgentDefinition) []string {
	present := make(map[string]bool, len(agents))
	for _, a := range agents {
		present[a.Name] = true
	}
	var seq []string
	for _, name := range sequencePrecedence {
		if present[name] {
			seq = append(seq, name)
		}
	}
	return seq
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
