package assemble

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/PlanWing/internal/quality"
	"github.com/josephgoksu/PlanWing/types"
)

func fixture() *types.PlanPackage {
	return &types.PlanPackage{
		RunID:       "run-123",
		GeneratedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Summary: types.ProjectSummary{
			ProjectName: "TaskFlow",
			Description: "A task management app for small teams with real-time updates.",
			Timeline:    "8 weeks",
			TeamSize:    "3 developers",
			Constraints: []string{"Must run on a single cloud provider"},
		},
		Clarifications: []types.ClarificationQA{
			{Question: "Which auth provider?", Answer: "Email plus OAuth via GitHub"},
			{Question: "Mobile support at launch?", Skipped: true},
		},
		Research: &types.ResearchResult{
			RequiredFeatures: []types.Feature{
				{Name: "User Authentication & Authorization", Priority: types.PriorityCritical, Complexity: types.ComplexityMedium, EstimatedHours: 16},
				{Name: "Real-time updates", Priority: types.PriorityHigh, Complexity: types.ComplexityHigh, EstimatedHours: 24},
			},
			RecommendedTechStack: types.TechStackRecommendation{
				Backend:  &types.StackChoice{Framework: "Express.js with TypeScript", Reasoning: "Mature ecosystem with strong typing."},
				Frontend: &types.StackChoice{Framework: "Next.js", Reasoning: "Server rendering with a React component model."},
				Database: &types.StackChoice{Framework: "PostgreSQL", Reasoning: "Relational integrity for task data."},
			},
			Architecture:        types.ArchitectureChoice{Pattern: "Monolithic (MVP-first)", Reasoning: "A single deployable keeps the first release simple."},
			EstimatedComplexity: types.ComplexityMedium,
			EstimatedTimeline:   "6-8 weeks",
		},
		Team: &types.AgentTeam{
			Agents: []types.AgentDefinition{
				{Name: "Planning Agent", Role: "Technical planning", Responsibilities: []string{"Break features into tasks"}, Skills: []string{"estimation"}, WorkloadPercentage: 20, Priority: types.PriorityCritical, EstimatedHours: 12},
				{Name: "Backend Developer", Role: "API and data layer", Responsibilities: []string{"Implement the API"}, Skills: []string{"typescript", "sql"}, WorkloadPercentage: 80, Priority: types.PriorityCritical, EstimatedHours: 40},
			},
			TotalAgents:         2,
			EstimatedTotalHours: 52,
			RecommendedSequence: []string{"Planning Agent", "Backend Developer"},
		},
		Tools: &types.ToolRecommendations{
			MCPServers:           []types.ToolRecommendation{{Name: "filesystem", Purpose: "Project file access"}},
			NPMPackages:          []types.ToolRecommendation{{Name: "express", Purpose: "HTTP framework"}},
			DevTools:             []types.ToolRecommendation{{Name: "vitest", Purpose: "Unit testing"}},
			Services:             []types.ToolRecommendation{{Name: "Vercel", Purpose: "Frontend hosting"}},
			TotalRecommendations: 4,
		},
		ADRs: []types.ADR{
			{ID: 1, Title: "Use PostgreSQL for primary storage", Status: types.ADRStatusAccepted, Context: "Task data is relational.", Decision: "Adopt PostgreSQL.", Consequences: []string{"Managed instance required"}, Alternatives: []types.ADRAlternative{{Name: "MongoDB", Pros: []string{"Flexible schema"}, Cons: []string{"Weaker relational integrity"}}}, DateCreated: "2026-03-14"},
			{ID: 2, Title: "Monolith first", Status: types.ADRStatusAccepted, Context: "Small team.", Decision: "Single deployable.", Consequences: []string{"Simple operations"}, DateCreated: "2026-03-14"},
		},
		Diagrams: types.DiagramSet{
			SystemContext:      "flowchart TB\n    user([\"User\"])\n",
			Container:          "flowchart TB\n    web[\"Frontend\"]\n",
			EntityRelationship: "erDiagram\n    USER {\n        string email\n    }\n",
			Sequences:          []string{"sequenceDiagram\n    participant C as Client\n"},
		},
		Costs: &types.CostEstimate{
			Items: []types.CostItem{
				{Service: "Backend hosting", Category: types.CostHosting, MonthlyEstimate: 25, AnnualEstimate: 300, Tier: "medium", Assumptions: []string{"Single instance"}},
			},
			TotalMonthly: 25,
			TotalAnnual:  300,
			Confidence:   types.ConfidenceMedium,
			DevelopmentCost: &types.DevelopmentCost{
				TotalHours: 52, HourlyRateMin: 50, HourlyRateMax: 150, TotalMin: 2600, TotalMax: 7800,
			},
		},
		Risks: []types.DependencyRisk{
			{PackageName: "jsonwebtoken", RiskLevel: types.RiskHigh, RiskFactors: []string{"Handles secrets"}, Mitigation: "Pin the version", Category: "security-critical"},
		},
	}
}

func TestRender_SectionOutlineMatchesValidator(t *testing.T) {
	doc, err := Render(fixture())
	require.NoError(t, err)

	for i, title := range quality.SectionTitles {
		heading := fmt.Sprintf("## %d. %s", i+1, title)
		assert.Contains(t, doc, heading)
	}
}

func TestRender_ValidatorFindsEverySection(t *testing.T) {
	pkg := fixture()
	doc, err := Render(pkg)
	require.NoError(t, err)
	decisions, err := RenderDecisions(pkg)
	require.NoError(t, err)

	report := quality.Validate(doc, decisions)
	assert.Empty(t, report.MissingDetails)
	assert.Empty(t, report.Errors)
}

func TestRender_Content(t *testing.T) {
	doc, err := Render(fixture())
	require.NoError(t, err)

	t.Run("feature table rows", func(t *testing.T) {
		assert.Contains(t, doc, "| User Authentication & Authorization | critical | medium | 16 |")
		assert.Contains(t, doc, "| Real-time updates | high | high | 24 |")
	})

	t.Run("stack choices with reasoning", func(t *testing.T) {
		assert.Contains(t, doc, "**Backend: Express.js with TypeScript.**")
		assert.Contains(t, doc, "Relational integrity for task data.")
	})

	t.Run("adr index table", func(t *testing.T) {
		assert.Contains(t, doc, "| ADR-001 | Use PostgreSQL for primary storage | accepted | 2026-03-14 |")
	})

	t.Run("mermaid blocks are fenced", func(t *testing.T) {
		assert.Contains(t, doc, "```mermaid\nerDiagram")
		assert.Contains(t, doc, "```mermaid\nsequenceDiagram")
	})

	t.Run("risk findings", func(t *testing.T) {
		assert.Contains(t, doc, "### jsonwebtoken (high)")
		assert.Contains(t, doc, "Mitigation: Pin the version")
	})

	t.Run("cost totals and development band", func(t *testing.T) {
		assert.Contains(t, doc, "Monthly infrastructure estimate: $25 ($300 annually)")
		assert.Contains(t, doc, "$2600 to $7800")
	})

	t.Run("skipped clarification becomes open question", func(t *testing.T) {
		assert.Contains(t, doc, `OPEN: "Mobile support at launch?"`)
	})
}

func TestRender_NoRisksFallback(t *testing.T) {
	pkg := fixture()
	pkg.Risks = nil
	doc, err := Render(pkg)
	require.NoError(t, err)
	assert.Contains(t, doc, "No recommended package matched the dependency watchlist")
}

func TestRender_CleanOfVagueLanguage(t *testing.T) {
	pkg := fixture()
	doc, err := Render(pkg)
	require.NoError(t, err)
	decisions, err := RenderDecisions(pkg)
	require.NoError(t, err)

	report := quality.Validate(doc, decisions)
	assert.Empty(t, report.VagueTermsFound, "template boilerplate must not trip the vague-term scan")
}

func TestRenderDecisions(t *testing.T) {
	decisions, err := RenderDecisions(fixture())
	require.NoError(t, err)

	assert.Contains(t, decisions, "## ADR-001: Use PostgreSQL for primary storage")
	assert.Contains(t, decisions, "**Status:** accepted (2026-03-14)")
	assert.Contains(t, decisions, "### Alternatives Considered")
	assert.Contains(t, decisions, "- Pro: Flexible schema")
	assert.Contains(t, decisions, "- Con: Weaker relational integrity")
	assert.Contains(t, decisions, "## Clarification Record")
	assert.Contains(t, decisions, "**A:** (skipped)")
}
