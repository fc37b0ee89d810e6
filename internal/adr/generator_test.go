package adr

import (
	"context"
	"strings"
	"testing"

	"github.com/josephgoksu/PlanWing/internal/llm"
	"github.com/josephgoksu/PlanWing/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseResearch() *types.ResearchResult {
	return &types.ResearchResult{
		RequiredFeatures: []types.Feature{
			{Name: "User Authentication", Priority: types.PriorityCritical, Complexity: types.ComplexityMedium, EstimatedHours: 16},
			{Name: "Task CRUD", Priority: types.PriorityMedium, Complexity: types.ComplexityMedium, EstimatedHours: 16},
		},
		RecommendedTechStack: types.TechStackRecommendation{
			Backend:  &types.StackChoice{Framework: "Express.js with TypeScript"},
			Frontend: &types.StackChoice{Framework: "Next.js"},
			Database: &types.StackChoice{Framework: "PostgreSQL"},
		},
		Architecture:        types.ArchitectureChoice{Pattern: "Monolithic", Reasoning: "small scope"},
		EstimatedComplexity: types.ComplexityMedium,
		EstimatedTimeline:   "6-8 weeks",
	}
}

func generate(t *testing.T, research *types.ResearchResult) []types.ADR {
	t.Helper()
	g := New(llm.Config{}) // no credential: local generator
	adrs, err := g.Generate(context.Background(), types.ProjectSummary{ProjectName: "TaskApp"}, research, nil, nil)
	require.NoError(t, err)
	return adrs
}

func titles(adrs []types.ADR) []string {
	out := make([]string, 0, len(adrs))
	for _, a := range adrs {
		out = append(out, a.Title)
	}
	return out
}

func TestGenerate_LocalCountAndIDs(t *testing.T) {
	adrs := generate(t, baseResearch())

	assert.GreaterOrEqual(t, len(adrs), 5)
	assert.LessOrEqual(t, len(adrs), MaxADRs)
	for i, a := range adrs {
		assert.Equal(t, i+1, a.ID, "IDs must be 1..n with no gaps")
		assert.Equal(t, types.ADRStatusAccepted, a.Status)
		assert.GreaterOrEqual(t, len(a.Consequences), 3)
		assert.LessOrEqual(t, len(a.Consequences), 5)
		assert.GreaterOrEqual(t, len(a.Alternatives), 2)
		assert.LessOrEqual(t, len(a.Alternatives), 3)
		assert.NotEmpty(t, a.DateCreated)
	}
}

func TestGenerate_AuthADRGate(t *testing.T) {
	withAuth := generate(t, baseResearch())
	assert.Contains(t, titles(withAuth), "Authentication Strategy")

	research := baseResearch()
	research.RequiredFeatures = []types.Feature{{Name: "CSV export", EstimatedHours: 8}}
	without := generate(t, research)
	assert.NotContains(t, titles(without), "Authentication Strategy")
}

func TestGenerate_StateManagementGate(t *testing.T) {
	research := baseResearch()
	research.EstimatedComplexity = types.ComplexityLow
	adrs := generate(t, research)
	assert.NotContains(t, titles(adrs), "Frontend State Management")

	research.EstimatedComplexity = types.ComplexityHigh
	adrs = generate(t, research)
	assert.Contains(t, titles(adrs), "Frontend State Management")
}

func TestGenerate_MicroservicesArchitectureADR(t *testing.T) {
	research := baseResearch()
	research.Architecture = types.ArchitectureChoice{Pattern: "Microservices", Reasoning: "distributed order flow"}
	adrs := generate(t, research)

	var pattern *types.ADR
	for i := range adrs {
		if adrs[i].Title == "Architecture Pattern" {
			pattern = &adrs[i]
		}
	}
	require.NotNil(t, pattern)

	// Distributed-systems consequence present.
	found := false
	for _, c := range pattern.Consequences {
		if strings.Contains(c, "distributed-systems") {
			found = true
		}
	}
	assert.True(t, found, "expected distributed-systems consequence")

	// The chosen pattern never appears as its own alternative.
	for _, alt := range pattern.Alternatives {
		assert.NotEqual(t, "Microservices", alt.Name)
	}
}

func TestGenerate_MonolithMVPExcludesMonolithAlternatives(t *testing.T) {
	research := baseResearch()
	research.Architecture.Pattern = "Monolithic (MVP-first)"
	adrs := generate(t, research)

	for _, a := range adrs {
		if a.Title != "Architecture Pattern" {
			continue
		}
		for _, alt := range a.Alternatives {
			assert.NotEqual(t, "Monolithic", alt.Name, "substring-matching pattern must be excluded")
		}
	}
}

func TestParseADRResponse_TruncationAt8(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"adrs":[`)
	for i := 0; i < 10; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"title":"D","context":"c","decision":"d","consequences":["x"]}`)
	}
	sb.WriteString(`]}`)

	adrs, err := parseADRResponse(sb.String())
	require.NoError(t, err)
	require.Len(t, adrs, 10)

	truncated := assignIDs(truncate(adrs))
	assert.Len(t, truncated, MaxADRs)
	assert.Equal(t, 1, truncated[0].ID)
	assert.Equal(t, MaxADRs, truncated[len(truncated)-1].ID)
}

func TestParseADRResponse_Malformed(t *testing.T) {
	_, err := parseADRResponse("no structure here")
	assert.Error(t, err)

	_, err = parseADRResponse(`{"adrs":[]}`)
	assert.Error(t, err, "empty ADR list fails schema validation")
}

func TestNew_PolicyFromCredential(t *testing.T) {
	local := New(llm.Config{})
	assert.False(t, local.policy.AttemptRemote)
	assert.True(t, local.policy.FallbackLocal)

	remote := New(llm.Config{Provider: llm.ProviderOpenAI, APIKey: "sk-key-with-enough-length"})
	assert.True(t, remote.policy.AttemptRemote)
	assert.True(t, remote.policy.FallbackLocal)
}
