package research

import (
	"context"
	"testing"

	"github.com/josephgoksu/PlanWing/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeLocal(t *testing.T, summary types.ProjectSummary, enrichment *types.InputEnrichment) *types.ResearchResult {
	t.Helper()
	r := newHeuristicResearcher()
	result, err := r.Analyze(context.Background(), summary, enrichment)
	require.NoError(t, err)
	return result
}

func TestAnalyze_TaskAppScenario(t *testing.T) {
	result := analyzeLocal(t, types.ProjectSummary{
		ProjectName: "TaskApp",
		Description: "A tool for teams to manage tasks with user login",
		Features:    []string{"Task CRUD", "Real-time updates"},
		TeamSize:    "1",
	}, nil)

	// "user" + "login" in the description imply an authentication feature.
	var auth *types.Feature
	for i := range result.RequiredFeatures {
		if result.RequiredFeatures[i].Name == "User Authentication & Authorization" {
			auth = &result.RequiredFeatures[i]
		}
	}
	require.NotNil(t, auth, "expected implied authentication feature")
	assert.Equal(t, types.PriorityCritical, auth.Priority)
	assert.Equal(t, types.ComplexityMedium, auth.Complexity)
	assert.Equal(t, 16.0, auth.EstimatedHours)

	// Real-time keyword drives that feature to high complexity.
	var realtime *types.Feature
	for i := range result.RequiredFeatures {
		if result.RequiredFeatures[i].Name == "Real-time updates" {
			realtime = &result.RequiredFeatures[i]
		}
	}
	require.NotNil(t, realtime)
	assert.Equal(t, types.ComplexityHigh, realtime.Complexity)

	// Overall complexity resolves to at least medium.
	assert.NotEqual(t, types.ComplexityLow, result.EstimatedComplexity)
}

func TestAnalyze_ZeroFeatures_NoTriggers(t *testing.T) {
	result := analyzeLocal(t, types.ProjectSummary{
		ProjectName: "Empty",
		Description: "A brochure site with nothing special",
	}, nil)

	assert.Empty(t, result.RequiredFeatures)
	assert.Equal(t, types.ComplexityLow, result.EstimatedComplexity)
	assert.NotEmpty(t, result.EstimatedTimeline)
	require.NotNil(t, result.RecommendedTechStack.Backend)
	require.NotNil(t, result.RecommendedTechStack.Database)
}

func TestAnalyze_ZeroFeatures_WithTriggers(t *testing.T) {
	result := analyzeLocal(t, types.ProjectSummary{
		ProjectName: "Implied",
		Description: "Users can save data through an api",
	}, nil)

	require.NotEmpty(t, result.RequiredFeatures)
	names := make([]string, 0, len(result.RequiredFeatures))
	for _, f := range result.RequiredFeatures {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "User Authentication & Authorization")
	assert.Contains(t, names, "Data Persistence")
	assert.Contains(t, names, "RESTful API Layer")
}

func TestAnalyze_ImpliedFeatureSkippedWhenCovered(t *testing.T) {
	result := analyzeLocal(t, types.ProjectSummary{
		Description: "Members login to the dashboard",
		Features:    []string{"OAuth login flow"},
	}, nil)

	count := 0
	for _, f := range result.RequiredFeatures {
		if f.Priority == types.PriorityCritical {
			count++
		}
	}
	assert.Equal(t, 1, count, "explicit login feature must suppress the implied one")
}

func TestAnalyze_ComplexityMonotonicInFeatureCount(t *testing.T) {
	base := types.ProjectSummary{Description: "plain catalog browsing"}

	small := base
	small.Features = genericFeatures(4)
	large := base
	large.Features = genericFeatures(12)

	rank := map[types.Complexity]int{types.ComplexityLow: 0, types.ComplexityMedium: 1, types.ComplexityHigh: 2}
	smallResult := analyzeLocal(t, small, nil)
	largeResult := analyzeLocal(t, large, nil)
	assert.GreaterOrEqual(t, rank[largeResult.EstimatedComplexity], rank[smallResult.EstimatedComplexity])
}

func genericFeatures(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Catalog page variant " + string(rune('A'+i))
	}
	return out
}

func TestAnalyze_StackHints(t *testing.T) {
	tests := []struct {
		name     string
		hints    types.TechHints
		backend  string
		frontend string
		database string
	}{
		{
			name:     "defaults",
			hints:    types.TechHints{},
			backend:  "Express.js with TypeScript",
			frontend: "Next.js",
			database: "PostgreSQL",
		},
		{
			name:     "go and vue and mongo",
			hints:    types.TechHints{Backend: []string{"Go"}, Frontend: []string{"vue"}, Database: "MongoDB"},
			backend:  "Gin",
			frontend: "Vue 3",
			database: "MongoDB",
		},
		{
			name:     "python and next and mysql",
			hints:    types.TechHints{Backend: []string{"Python 3.12"}, Frontend: []string{"nextjs"}, Database: "mysql 8"},
			backend:  "FastAPI",
			frontend: "Next.js",
			database: "MySQL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeLocal(t, types.ProjectSummary{Description: "x", TechStack: tt.hints}, nil)
			assert.Equal(t, tt.backend, result.RecommendedTechStack.Backend.Framework)
			assert.Equal(t, tt.frontend, result.RecommendedTechStack.Frontend.Framework)
			assert.Equal(t, tt.database, result.RecommendedTechStack.Database.Framework)
		})
	}
}

func TestAnalyze_ArchitecturePatterns(t *testing.T) {
	tests := []struct {
		name    string
		summary types.ProjectSummary
		pattern string
	}{
		{"microservices", types.ProjectSummary{Description: "a distributed order system"}, "Microservices"},
		{"serverless", types.ProjectSummary{Description: "event handlers on lambda"}, "Serverless"},
		{"solo team", types.ProjectSummary{Description: "simple shop", TeamSize: "1"}, archMonolithMVP},
		{"mvp mention", types.ProjectSummary{Description: "an mvp for recipe sharing", TeamSize: "4"}, archMonolithMVP},
		{"default", types.ProjectSummary{Description: "internal reporting portal", TeamSize: "3"}, archMonolith},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeLocal(t, tt.summary, nil)
			assert.Equal(t, tt.pattern, result.Architecture.Pattern)
		})
	}
}

func TestAnalyze_ArchitectureEnrichmentOverride(t *testing.T) {
	result := analyzeLocal(t,
		types.ProjectSummary{Description: "a distributed order system"},
		&types.InputEnrichment{ArchitectureStyle: "Modular Monolith"})
	assert.Equal(t, "Modular Monolith", result.Architecture.Pattern)
}

func TestAnalyze_TimelinePassthrough(t *testing.T) {
	result := analyzeLocal(t, types.ProjectSummary{Description: "x", Timeline: "by end of Q3"}, nil)
	assert.Equal(t, "by end of Q3", result.EstimatedTimeline)
}

func TestAnalyze_TimelineDerived(t *testing.T) {
	// 2 default features at 16h each on a 1-person team: 32h / 40 < 2 weeks.
	result := analyzeLocal(t, types.ProjectSummary{
		Description: "x",
		Features:    []string{"Reports", "Exports"},
		TeamSize:    "1",
	}, nil)
	assert.Equal(t, "1-2 weeks", result.EstimatedTimeline)
}

func TestAnalyze_PriorityOverrideFromEnrichment(t *testing.T) {
	result := analyzeLocal(t,
		types.ProjectSummary{Description: "x", Features: []string{"CSV Export"}},
		&types.InputEnrichment{FeaturePriorities: map[string]types.Priority{"export": types.PriorityCritical}})
	require.Len(t, result.RequiredFeatures, 1)
	assert.Equal(t, types.PriorityCritical, result.RequiredFeatures[0].Priority)
}

func TestParseTeamSize(t *testing.T) {
	assert.Equal(t, 1, parseTeamSize(""))
	assert.Equal(t, 1, parseTeamSize("solo"))
	assert.Equal(t, 3, parseTeamSize("3"))
	assert.Equal(t, 5, parseTeamSize("5 developers"))
	assert.Equal(t, 2, parseTeamSize("a team of 2, maybe more"))
}

func TestMatchKeyword(t *testing.T) {
	// Short keywords only match whole words.
	assert.True(t, matchKeyword("ai-powered chat", "ai"))
	assert.True(t, matchKeyword("public api endpoints", "api"))
	assert.False(t, matchKeyword("email digest", "ai"))
	assert.False(t, matchKeyword("rapid prototyping", "api"))

	// Longer keywords keep substring semantics.
	assert.True(t, matchKeyword("user authentication", "auth"))
}

func TestScoreFeature_EmailIsNotAI(t *testing.T) {
	email := scoreFeature("Email notifications")
	assert.Equal(t, types.PriorityMedium, email.Priority)
	assert.Equal(t, types.ComplexityMedium, email.Complexity)
	assert.Equal(t, 10.0, email.Hours)

	ai := scoreFeature("AI assistant")
	assert.Equal(t, types.PriorityHigh, ai.Priority)
	assert.Equal(t, types.ComplexityHigh, ai.Complexity)
	assert.Equal(t, 32.0, ai.Hours)
}

func TestAnalyze_EmailDigestStaysLowComplexity(t *testing.T) {
	result := analyzeLocal(t, types.ProjectSummary{
		ProjectName: "Digest",
		Description: "Send a weekly email digest to subscribers",
		Features:    []string{"Email digest"},
	}, nil)
	assert.Equal(t, types.ComplexityLow, result.EstimatedComplexity)
}
