package team

import (
	"testing"

	"github.com/josephgoksu/PlanWing/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullStack() types.TechStackRecommendation {
	return types.TechStackRecommendation{
		Backend:  &types.StackChoice{Framework: "Gin"},
		Frontend: &types.StackChoice{Framework: "Next.js"},
		Database: &types.StackChoice{Framework: "PostgreSQL"},
	}
}

func agentNames(team *types.AgentTeam) []string {
	names := make([]string, 0, len(team.Agents))
	for _, a := range team.Agents {
		names = append(names, a.Name)
	}
	return names
}

func TestCompose_AlwaysHasPlanningAndQA(t *testing.T) {
	team := Compose(types.ProjectSummary{Description: "tiny"}, &types.ResearchResult{
		EstimatedComplexity: types.ComplexityLow,
	})
	names := agentNames(team)
	assert.Contains(t, names, AgentPlanning)
	assert.Contains(t, names, AgentQA)
	assert.Equal(t, len(team.Agents), team.TotalAgents)
}

func TestCompose_SequenceIsPrecedenceSubsequence(t *testing.T) {
	team := Compose(types.ProjectSummary{Description: "a production service to deploy"}, &types.ResearchResult{
		RecommendedTechStack: fullStack(),
		EstimatedComplexity:  types.ComplexityHigh,
		RequiredFeatures: []types.Feature{
			{Name: "Data import", EstimatedHours: 8},
			{Name: "Database backups", EstimatedHours: 8},
			{Name: "CRUD screens", EstimatedHours: 8},
		},
	})

	require.NotEmpty(t, team.RecommendedSequence)
	assert.Equal(t, AgentPlanning, team.RecommendedSequence[0])

	// Subsequence of the fixed precedence order.
	idx := 0
	for _, name := range team.RecommendedSequence {
		found := false
		for ; idx < len(sequencePrecedence); idx++ {
			if sequencePrecedence[idx] == name {
				found = true
				idx++
				break
			}
		}
		assert.True(t, found, "sequence entry %q violates precedence order", name)
	}

	// Permutation of the present agents.
	assert.ElementsMatch(t, agentNames(team), team.RecommendedSequence)
}

func TestCompose_DatabaseAgentGate(t *testing.T) {
	// Low complexity, zero data-keyword features: no database agent.
	team := Compose(types.ProjectSummary{Description: "x"}, &types.ResearchResult{
		RecommendedTechStack: fullStack(),
		EstimatedComplexity:  types.ComplexityLow,
		RequiredFeatures:     []types.Feature{{Name: "Landing page", EstimatedHours: 6}},
	})
	assert.NotContains(t, agentNames(team), AgentDatabase)

	// Three data-flavored features force it in even at low complexity.
	team = Compose(types.ProjectSummary{Description: "x"}, &types.ResearchResult{
		RecommendedTechStack: fullStack(),
		EstimatedComplexity:  types.ComplexityLow,
		RequiredFeatures: []types.Feature{
			{Name: "Data export", EstimatedHours: 8},
			{Name: "Report storage", EstimatedHours: 8},
			{Name: "Inventory CRUD", EstimatedHours: 8},
		},
	})
	assert.Contains(t, agentNames(team), AgentDatabase)

	// High complexity alone is enough.
	team = Compose(types.ProjectSummary{Description: "x"}, &types.ResearchResult{
		EstimatedComplexity: types.ComplexityHigh,
	})
	assert.Contains(t, agentNames(team), AgentDatabase)
}

func TestCompose_BackendFrontendGates(t *testing.T) {
	team := Compose(types.ProjectSummary{Description: "x"}, &types.ResearchResult{
		RecommendedTechStack: types.TechStackRecommendation{
			Backend: &types.StackChoice{Framework: "FastAPI"},
		},
		EstimatedComplexity: types.ComplexityMedium,
	})
	names := agentNames(team)
	assert.Contains(t, names, AgentBackend)
	assert.NotContains(t, names, AgentFrontend)
}

func TestCompose_DevOpsGate(t *testing.T) {
	research := &types.ResearchResult{EstimatedComplexity: types.ComplexityMedium}

	assert.NotContains(t, agentNames(Compose(types.ProjectSummary{Description: "an mvp we deploy weekly"}, research)), AgentDevOps)
	assert.Contains(t, agentNames(Compose(types.ProjectSummary{Description: "deploy to production"}, research)), AgentDevOps)
	assert.NotContains(t, agentNames(Compose(types.ProjectSummary{Description: "internal experiment prototype"}, research)), AgentDevOps)

	high := &types.ResearchResult{EstimatedComplexity: types.ComplexityHigh}
	assert.Contains(t, agentNames(Compose(types.ProjectSummary{Description: "big platform"}, high)), AgentDevOps)
}

func TestCompose_HourAccounting(t *testing.T) {
	team := Compose(types.ProjectSummary{Description: "deploy to production"}, &types.ResearchResult{
		RecommendedTechStack: fullStack(),
		EstimatedComplexity:  types.ComplexityMedium,
		RequiredFeatures: []types.Feature{
			{Name: "Payment API", EstimatedHours: 24},
			{Name: "Dashboard view", EstimatedHours: 12},
		},
	})

	var sum float64
	for _, a := range team.Agents {
		sum += a.EstimatedHours
		assert.GreaterOrEqual(t, a.WorkloadPercentage, 0)
		assert.LessOrEqual(t, a.WorkloadPercentage, 100)
	}
	assert.InDelta(t, sum, team.EstimatedTotalHours, 1e-9)

	// Backend sums the payment feature; frontend the dashboard feature.
	for _, a := range team.Agents {
		switch a.Name {
		case AgentBackend:
			assert.Equal(t, 24.0, a.EstimatedHours)
		case AgentFrontend:
			assert.Equal(t, 12.0, a.EstimatedHours)
		}
	}
}

func TestCompose_RoleHourFallback(t *testing.T) {
	// No feature matches backend keywords: fall back to count multiplier.
	team := Compose(types.ProjectSummary{Description: "x"}, &types.ResearchResult{
		RecommendedTechStack: types.TechStackRecommendation{Backend: &types.StackChoice{Framework: "Gin"}},
		EstimatedComplexity:  types.ComplexityLow,
		RequiredFeatures: []types.Feature{
			{Name: "Landing hero", EstimatedHours: 6},
			{Name: "Pricing table", EstimatedHours: 6},
		},
	})
	for _, a := range team.Agents {
		if a.Name == AgentBackend {
			assert.Equal(t, float64(2*backendFallbackPerFeature), a.EstimatedHours)
		}
	}
}
