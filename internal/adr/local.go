package adr

import (
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/PlanWing/types"
)

// architectureAlternatives is the pool the pattern ADR draws rejected
// options from. The chosen pattern is always excluded.
var architectureAlternatives = []types.ADRAlternative{
	{
		Name: "Monolithic",
		Pros: []string{"Single deployable, simple local development", "No network boundaries inside the domain"},
		Cons: []string{"Scaling is all-or-nothing", "Large teams contend on one codebase"},
	},
	{
		Name: "Microservices",
		Pros: []string{"Independent scaling and deployment per service", "Clear team ownership boundaries"},
		Cons: []string{"Distributed-systems failure modes", "Operational overhead before product-market fit"},
	},
	{
		Name: "Serverless",
		Pros: []string{"No server operations, pay-per-invocation", "Scales to zero"},
		Cons: []string{"Cold starts and execution limits", "Vendor-specific programming model"},
	},
	{
		Name: "Modular Monolith",
		Pros: []string{"Module boundaries without network hops", "Extractable to services later"},
		Cons: []string{"Boundary discipline erodes without enforcement"},
	},
}

// distributedSystemsConsequence appears in the pattern ADR whenever the
// chosen architecture is distributed.
const distributedSystemsConsequence = "The team takes on distributed-systems challenges: partial failure, eventual consistency, and cross-service observability"

// dateFormat matches the document's date rendering.
const dateFormat = "2006-01-02"

// generateLocal emits the fixed, ordered ADR set templated from the
// research result. Conditional records: Authentication Strategy only when
// an auth-like feature exists, Frontend State Management only when
// complexity is not low.
func generateLocal(summary types.ProjectSummary, research *types.ResearchResult, enrichment *types.InputEnrichment) []types.ADR {
	today := time.Now().Format(dateFormat)
	adrs := make([]types.ADR, 0, MaxADRs)

	adrs = append(adrs, stackADR(summary, research, today))
	adrs = append(adrs, architectureADR(research, today))
	if hasAuthFeature(research) {
		adrs = append(adrs, authADR(research, enrichment, today))
	}
	adrs = append(adrs, databaseADR(research, today))
	adrs = append(adrs, apiADR(research, today))
	if research.EstimatedComplexity != types.ComplexityLow {
		adrs = append(adrs, stateManagementADR(research, today))
	}
	adrs = append(adrs, deploymentADR(research, enrichment, today))
	adrs = append(adrs, testingADR(research, today))

	return adrs
}

func hasAuthFeature(research *types.ResearchResult) bool {
	for _, f := range research.RequiredFeatures {
		lower := strings.ToLower(f.Name)
		if strings.Contains(lower, "auth") || strings.Contains(lower, "login") {
			return true
		}
	}
	return false
}

func stackADR(summary types.ProjectSummary, research *types.ResearchResult, date string) types.ADR {
	stack := research.RecommendedTechStack
	var parts []string
	if stack.Backend != nil {
		parts = append(parts, "backend: "+stack.Backend.Framework)
	}
	if stack.Frontend != nil {
		parts = append(parts, "frontend: "+stack.Frontend.Framework)
	}
	if stack.Database != nil {
		parts = append(parts, "database: "+stack.Database.Framework)
	}

	return types.ADR{
		Title:  "Technology Stack Selection",
		Status: types.ADRStatusAccepted,
		Context: fmt.Sprintf("%s needs a technology stack the team can deliver %s within the estimated timeline of %s.",
			projectName(summary), research.EstimatedComplexity, research.EstimatedTimeline),
		Decision: "Adopt the recommended stack (" + strings.Join(parts, "; ") + ").",
		Consequences: []string{
			"Hiring and onboarding target one well-documented stack",
			"Library choices downstream are constrained to this ecosystem",
			"Revisiting the stack later carries rewrite cost for core modules",
		},
		Alternatives: []types.ADRAlternative{
			{
				Name: "Polyglot per-concern stack",
				Pros: []string{"Best-of-breed tool for each concern"},
				Cons: []string{"Fragmented expertise and tooling", "Higher operational surface"},
			},
			{
				Name: "Low-code platform",
				Pros: []string{"Fastest initial delivery"},
				Cons: []string{"Hard ceiling on custom features", "Vendor lock-in"},
			},
		},
		DateCreated: date,
	}
}

func architectureADR(research *types.ResearchResult, date string) types.ADR {
	chosen := research.Architecture.Pattern
	consequences := []string{
		"Deployment topology and team workflow follow the " + chosen + " pattern",
		"Scaling strategy is fixed by the pattern's unit of deployment",
		"A later pattern change is a structural migration, not a refactor",
	}
	if isDistributed(chosen) {
		consequences = append(consequences, distributedSystemsConsequence)
	}

	// Never offer the chosen pattern as its own alternative.
	var alternatives []types.ADRAlternative
	for _, alt := range architectureAlternatives {
		if strings.EqualFold(alt.Name, chosen) || strings.Contains(strings.ToLower(chosen), strings.ToLower(alt.Name)) {
			continue
		}
		alternatives = append(alternatives, alt)
		if len(alternatives) == 3 {
			break
		}
	}

	return types.ADR{
		Title:        "Architecture Pattern",
		Status:       types.ADRStatusAccepted,
		Context:      "The system needs an architectural style matching its complexity (" + string(research.EstimatedComplexity) + ") and team shape. " + research.Architecture.Reasoning,
		Decision:     "Adopt the " + chosen + " pattern.",
		Consequences: consequences,
		Alternatives: alternatives,
		DateCreated:  date,
	}
}

func isDistributed(pattern string) bool {
	lower := strings.ToLower(pattern)
	return strings.Contains(lower, "microservice") || strings.Contains(lower, "distributed")
}

func authADR(research *types.ResearchResult, enrichment *types.InputEnrichment, date string) types.ADR {
	decision := "Use stateless JWT access tokens with short expiry and refresh rotation."
	context := "The feature set includes authentication; credential handling and session strategy must be decided before API design."
	if enrichment != nil && enrichment.Security != "" {
		context += " Stated security requirement: " + enrichment.Security + "."
	}

	return types.ADR{
		Title:    "Authentication Strategy",
		Status:   types.ADRStatusAccepted,
		Context:  context,
		Decision: decision,
		Consequences: []string{
			"API servers stay stateless and horizontally scalable",
			"Token revocation needs a denylist or short expiry discipline",
			"Password storage uses an adaptive hash (bcrypt)",
		},
		Alternatives: []types.ADRAlternative{
			{
				Name: "Server-side sessions",
				Pros: []string{"Trivial revocation", "Smaller attack surface on the client"},
				Cons: []string{"Session store becomes shared state", "Sticky-session or shared-cache scaling"},
			},
			{
				Name: "Managed identity provider",
				Pros: []string{"Offloads credential storage and MFA"},
				Cons: []string{"Per-user pricing", "External dependency on the login path"},
			},
		},
		DateCreated: date,
	}
}

func databaseADR(research *types.ResearchResult, date string) types.ADR {
	db := "PostgreSQL"
	reasoning := ""
	if research.RecommendedTechStack.Database != nil {
		db = research.RecommendedTechStack.Database.Framework
		reasoning = research.RecommendedTechStack.Database.Reasoning
	}

	return types.ADR{
		Title:    "Database Schema Design",
		Status:   types.ADRStatusAccepted,
		Context:  "Feature data must be stored durably with integrity guarantees matching the domain. " + reasoning,
		Decision: "Model the domain as a normalized schema in " + db + ", with migrations checked into the repository.",
		Consequences: []string{
			"Schema changes flow through reviewed migrations",
			"Referential integrity is enforced in the database, not application code",
			"Reporting queries can rely on a stable relational shape",
		},
		Alternatives: []types.ADRAlternative{
			{
				Name: "Schemaless document store",
				Pros: []string{"No migration ceremony early on"},
				Cons: []string{"Integrity pushed into application code", "Query patterns must be known upfront"},
			},
			{
				Name: "Event sourcing",
				Pros: []string{"Full audit history by construction"},
				Cons: []string{"Significant modeling and tooling overhead", "Read models add eventual consistency"},
			},
		},
		DateCreated: date,
	}
}

func apiADR(research *types.ResearchResult, date string) types.ADR {
	return types.ADR{
		Title:    "API Design Approach",
		Status:   types.ADRStatusAccepted,
		Context:  "Clients and integrations need a stable contract over the " + research.Architecture.Pattern + " backend.",
		Decision: "Expose a resource-oriented REST API with JSON payloads, versioned under /api/v1.",
		Consequences: []string{
			"Endpoints map predictably to domain resources",
			"Breaking changes require a new version prefix",
			"Input validation happens at the API boundary",
		},
		Alternatives: []types.ADRAlternative{
			{
				Name: "GraphQL",
				Pros: []string{"Clients fetch exactly what they need"},
				Cons: []string{"Caching and rate limiting are harder", "Schema governance overhead"},
			},
			{
				Name: "gRPC",
				Pros: []string{"Typed contracts and efficient transport"},
				Cons: []string{"Poor browser ergonomics without a gateway"},
			},
		},
		DateCreated: date,
	}
}

func stateManagementADR(research *types.ResearchResult, date string) types.ADR {
	frontend := "the frontend"
	if research.RecommendedTechStack.Frontend != nil {
		frontend = research.RecommendedTechStack.Frontend.Framework
	}

	return types.ADR{
		Title:    "Frontend State Management",
		Status:   types.ADRStatusAccepted,
		Context:  "At " + string(research.EstimatedComplexity) + " complexity, " + frontend + " screens share non-trivial client state.",
		Decision: "Keep server state in a query-cache layer and local UI state in component state; introduce a global store only for genuinely global concerns.",
		Consequences: []string{
			"Server data is cached, deduplicated and refetched declaratively",
			"No boilerplate global store for data the server owns",
			"Genuinely global state (session, theme) stays small and auditable",
		},
		Alternatives: []types.ADRAlternative{
			{
				Name: "Single global store for everything",
				Pros: []string{"One place to look for state"},
				Cons: []string{"Server cache concerns reimplemented by hand", "Action/reducer boilerplate"},
			},
			{
				Name: "Component state only",
				Pros: []string{"Zero dependencies"},
				Cons: []string{"Prop drilling and duplicated fetches at scale"},
			},
		},
		DateCreated: date,
	}
}

func deploymentADR(research *types.ResearchResult, enrichment *types.InputEnrichment, date string) types.ADR {
	pattern := strings.ToLower(research.Architecture.Pattern)
	decision := "Deploy as a container image to a managed platform with automated deploys from the main branch."
	switch {
	case strings.Contains(pattern, "serverless"):
		decision = "Deploy functions to a managed FaaS platform with infrastructure defined as code."
	case strings.Contains(pattern, "microservice"):
		decision = "Deploy each service as its own container with an orchestrator managing rollout and scaling."
	}

	context := "The " + research.Architecture.Pattern + " pattern and " + string(research.EstimatedComplexity) + " complexity set the deployment shape."
	if enrichment != nil && enrichment.ScalabilityTier != "" {
		context += " Target scalability tier: " + enrichment.ScalabilityTier + "."
	}

	return types.ADR{
		Title:    "Deployment Strategy",
		Status:   types.ADRStatusAccepted,
		Context:  context,
		Decision: decision,
		Consequences: []string{
			"Every merge to main is releasable",
			"Rollback is a redeploy of the previous image or function version",
			"Environment configuration lives outside the artifact",
		},
		Alternatives: []types.ADRAlternative{
			{
				Name: "Manual VM provisioning",
				Pros: []string{"Full control of the host"},
				Cons: []string{"Snowflake servers", "Slow, error-prone releases"},
			},
			{
				Name: "Self-hosted Kubernetes",
				Pros: []string{"Maximum orchestration flexibility"},
				Cons: []string{"Cluster operations exceed the team's capacity at this stage"},
			},
		},
		DateCreated: date,
	}
}

func testingADR(research *types.ResearchResult, date string) types.ADR {
	return types.ADR{
		Title:    "Testing Strategy",
		Status:   types.ADRStatusAccepted,
		Context:  fmt.Sprintf("With %d planned features, regressions must be caught before deploy without a manual QA pass per release.", len(research.RequiredFeatures)),
		Decision: "Adopt a test pyramid: unit tests on domain logic, integration tests on API boundaries, and a small end-to-end suite on the critical paths.",
		Consequences: []string{
			"CI gates merges on the unit and integration suites",
			"Critical user journeys have end-to-end coverage",
			"Test data management becomes part of the development workflow",
		},
		Alternatives: []types.ADRAlternative{
			{
				Name: "End-to-end tests only",
				Pros: []string{"Tests mirror real usage"},
				Cons: []string{"Slow, flaky suites", "Poor failure localization"},
			},
			{
				Name: "Manual QA per release",
				Pros: []string{"No automation investment"},
				Cons: []string{"Release cadence throttled by human testing", "Coverage decays as scope grows"},
			},
		},
		DateCreated: date,
	}
}

func projectName(summary types.ProjectSummary) string {
	if summary.ProjectName != "" {
		return summary.ProjectName
	}
	return "The project"
}
