// Package assemble renders the final build-spec document and the
// companion decisions file from a completed plan. Rendering is pure
// template execution; the section outline matches the quality
// validator's rubric exactly.
package assemble

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/josephgoksu/PlanWing/types"
)

var titleCaser = cases.Title(language.English)

var funcMap = template.FuncMap{
	"title": titleCaser.String,
	"join":  strings.Join,
	"money": func(v float64) string { return fmt.Sprintf("$%.0f", v) },
	"fence": func() string { return "```" },
	"add":   func(a, b int) int { return a + b },
}

// Render produces the full build-spec document in Markdown.
func Render(pkg *types.PlanPackage) (string, error) {
	var sb strings.Builder
	if err := documentTmpl.Execute(&sb, pkg); err != nil {
		return "", fmt.Errorf("rendering build spec: %w", err)
	}
	return sb.String(), nil
}

// RenderDecisions produces the companion decisions file: the full ADR
// texts plus the clarification record.
func RenderDecisions(pkg *types.PlanPackage) (string, error) {
	var sb strings.Builder
	if err := decisionsTmpl.Execute(&sb, pkg); err != nil {
		return "", fmt.Errorf("rendering decisions: %w", err)
	}
	return sb.String(), nil
}

var documentTmpl = template.Must(template.New("buildspec").Funcs(funcMap).Parse(`# Build Specification: {{.Summary.ProjectName}}

Run {{.RunID}} generated on {{.GeneratedAt.Format "2006-01-02"}}.

## 1. Project Overview

{{.Summary.Description}}

This document is the complete build specification for {{.Summary.ProjectName}}. It consolidates the derived feature set, the recommended technology stack, the proposed team composition, the recorded architecture decisions, the system diagrams and the cost projection into a single reviewable plan.
{{- if .Summary.Timeline}}

Stated timeline: {{.Summary.Timeline}}.{{end}}
{{- if .Summary.TeamSize}}
Stated team size: {{.Summary.TeamSize}}.{{end}}
{{- if .Summary.Constraints}}

Constraints:
{{- range .Summary.Constraints}}
- {{.}}
{{- end}}
{{- end}}

## 2. Goals & Success Criteria

The project ships {{len .Research.RequiredFeatures}} scoped features within the estimated timeline of {{.Research.EstimatedTimeline}}. Overall delivery complexity is rated {{title (printf "%s" .Research.EstimatedComplexity)}}.

Success criteria:
- Every critical-priority feature is implemented, tested and deployed.
- The system runs on the recommended stack without unplanned substitutions.
- High-priority features reach production within the estimated timeline.
- Total development effort stays near the {{printf "%.0f"  .Research.TotalFeatureHours}} estimated feature hours.
- All recorded architecture decisions are either followed or explicitly superseded with a new record.

## 3. Features & Requirements

| Feature | Priority | Complexity | Est. Hours |
|---------|----------|------------|------------|
{{- range .Research.RequiredFeatures}}
| {{.Name}} | {{.Priority}} | {{.Complexity}} | {{printf "%.0f" .EstimatedHours}} |
{{- end}}

Total estimated feature effort: {{printf "%.0f" .Research.TotalFeatureHours}} hours. Priorities reflect both keyword analysis of the project description and any explicit overrides supplied during intake. Hour estimates cover implementation and feature-level testing; cross-cutting work is carried by the team plan in section 8.

## 4. Technical Architecture

Recommended pattern: **{{.Research.Architecture.Pattern}}**.

{{.Research.Architecture.Reasoning}}

The container layout in section 11 shows how the pattern maps onto deployable units. Service boundaries follow the feature groupings in section 3; shared state lives in the managed database, and all inter-component communication happens over explicit interfaces rather than shared memory.

## 5. Tech Stack

{{- with .Research.RecommendedTechStack.Backend}}

**Backend: {{.Framework}}.** {{.Reasoning}}
{{- end}}
{{- with .Research.RecommendedTechStack.Frontend}}

**Frontend: {{.Framework}}.** {{.Reasoning}}
{{- end}}
{{- with .Research.RecommendedTechStack.Database}}

**Database: {{.Framework}}.** {{.Reasoning}}
{{- end}}

Supporting packages and developer tooling are listed in section 12; their adoption risks are assessed in section 13.

## 6. Data Model

The entity model below is derived from the domain nouns in the project description and feature list. Field lists are starting points for schema design, not final migrations.

{{fence}}mermaid
{{.Diagrams.EntityRelationship}}{{fence}}

Every entity carries standard audit columns (created_at, updated_at) in addition to the fields shown. Ownership relations are enforced with foreign keys at the database level.

## 7. API Design

The API is a versioned JSON HTTP interface rooted at ` + "`/api/v1`" + `. Conventions:

- Resource-oriented routes with plural nouns and standard HTTP verbs.
- Request and response bodies are JSON; errors use a consistent envelope with a machine-readable code and a human-readable message.
- List endpoints support pagination via limit and offset query parameters.
- Mutating endpoints validate payloads before touching storage and return 422 on validation failure.
- Authenticated routes expect a bearer token in the Authorization header.

Representative request flows are diagrammed in section 11.

## 8. Agent Team & Responsibilities

Team of {{.Team.TotalAgents}} agents, {{printf "%.0f" .Team.EstimatedTotalHours}} total estimated hours.

{{range .Team.Agents}}### {{.Name}} ({{.WorkloadPercentage}}% of effort, {{printf "%.0f" .EstimatedHours}}h)

Role: {{.Role}}. Priority: {{.Priority}}.

Responsibilities:
{{- range .Responsibilities}}
- {{.}}
{{- end}}

Skills: {{join .Skills ", "}}.

{{end}}
## 9. Development Phases

Work proceeds in the recommended sequence, one phase per lead agent. Phases overlap where dependencies allow, but each phase's exit criteria gate the next phase's integration work.

{{range $i, $name := .Team.RecommendedSequence}}{{add $i 1}}. **{{$name}} phase** led by {{$name}}.
{{end}}
Each phase ends with working, tested functionality merged to the main branch. The QA phase runs continuously alongside the others rather than only at the end.

## 10. Architecture Decision Records

{{len .ADRs}} decisions are recorded for this plan. Full context, consequences and rejected alternatives for each decision are kept in the companion decisions file.

| ID | Title | Status | Date |
|----|-------|--------|------|
{{- range .ADRs}}
| ADR-{{printf "%03d" .ID}} | {{.Title}} | {{.Status}} | {{.DateCreated}} |
{{- end}}

## 11. System Diagrams

### System Context

{{fence}}mermaid
{{.Diagrams.SystemContext}}{{fence}}

### Containers

{{fence}}mermaid
{{.Diagrams.Container}}{{fence}}

### Request Flows
{{range .Diagrams.Sequences}}
{{fence}}mermaid
{{.}}{{fence}}
{{end}}

## 12. Tool & Package Recommendations

{{.Tools.TotalRecommendations}} recommendations across four groups.

{{- if .Tools.MCPServers}}

**MCP servers:**
{{- range .Tools.MCPServers}}
- {{.Name}}: {{.Purpose}}
{{- end}}
{{- end}}
{{- if .Tools.NPMPackages}}

**Packages:**
{{- range .Tools.NPMPackages}}
- {{.Name}}: {{.Purpose}}
{{- end}}
{{- end}}
{{- if .Tools.DevTools}}

**Developer tooling:**
{{- range .Tools.DevTools}}
- {{.Name}}: {{.Purpose}}
{{- end}}
{{- end}}
{{- if .Tools.Services}}

**Services:**
{{- range .Tools.Services}}
- {{.Name}}: {{.Purpose}}
{{- end}}
{{- end}}

## 13. Dependency Risk Assessment

{{- if .Risks}}

{{len .Risks}} recommended packages need extra scrutiny before adoption.

{{range .Risks}}### {{.PackageName}} ({{.RiskLevel}})

{{range .RiskFactors}}- {{.}}
{{end}}Mitigation: {{.Mitigation}}
{{- if .Alternatives}}
Alternatives: {{join .Alternatives ", "}}.
{{- end}}

{{end}}
{{- else}}

No recommended package matched the dependency watchlist. Standard supply-chain hygiene still applies: pin versions with a lockfile, enable automated vulnerability scanning in CI and review transitive dependency changes on upgrade.
{{- end}}

## 14. Cost Estimate

Monthly infrastructure estimate: {{money .Costs.TotalMonthly}} ({{money .Costs.TotalAnnual}} annually). Confidence: {{.Costs.Confidence}}.

| Service | Category | Monthly | Tier |
|---------|----------|---------|------|
{{- range .Costs.Items}}
| {{.Service}} | {{.Category}} | {{money .MonthlyEstimate}} | {{.Tier}} |
{{- end}}
{{- with .Costs.DevelopmentCost}}

One-time development cost: {{money .TotalMin}} to {{money .TotalMax}} ({{printf "%.0f" .TotalHours}} hours at {{money .HourlyRateMin}} to {{money .HourlyRateMax}} per hour).
{{- end}}

Estimates assume the stated deployment tier; each line item's scaling notes describe what drives the next tier.

## 15. Security Considerations

- All traffic is served over TLS; no plaintext HTTP listeners in any environment.
- Secrets live in environment configuration or a secrets manager, never in the repository.
- Passwords are hashed with a memory-hard algorithm; session tokens are short-lived and revocable.
- Input validation runs at the API boundary for every mutating endpoint.
- Dependencies flagged in section 13 get a security review before each upgrade.
- Database access uses least-privilege credentials per service; migrations run under a separate role.

## 16. Testing Strategy

- **Unit tests** cover business logic in isolation and run on every commit.
- **Integration tests** exercise API endpoints against a real database instance in CI.
- **End-to-end tests** drive the critical user journeys through the rendered frontend.
- Coverage gates block merges when critical-path packages fall below the agreed threshold.
- The QA agent owns the test plan and reviews coverage at each phase boundary in section 9.

## 17. Deployment & Operations

The {{.Research.Architecture.Pattern}} architecture deploys per the service recommendations in section 12. Environments:

- **Preview**: ephemeral deploys per pull request for review.
- **Staging**: production-shaped environment for integration verification.
- **Production**: deployed from the main branch after the quality gate passes.

Rollbacks redeploy the previous build artifact. Database migrations are forward-only and reviewed separately from application deploys. Logs are structured and shipped to the platform's log drain; alerts page on error-rate and latency thresholds.

## 18. Open Questions & Assumptions

Assumptions made by this plan:

{{with .Costs.DevelopmentCost}}- Developer cost uses a {{money .HourlyRateMin}} to {{money .HourlyRateMax}} per hour blended rate.
{{end}}- Infrastructure pricing reflects the selected deployment tier at current list prices.
- Hour estimates assume the stated team size working standard weeks.
{{- if .Clarifications}}

Clarifications recorded during intake:
{{- range .Clarifications}}
{{- if .Skipped}}
- OPEN: "{{.Question}}" was not answered and remains an open decision.
{{- else}}
- "{{.Question}}": {{.Answer}}
{{- end}}
{{- end}}
{{- else}}

No intake clarifications were recorded for this run.
{{- end}}
`))

var decisionsTmpl = template.Must(template.New("decisions").Funcs(funcMap).Parse(`# Architecture Decisions: {{.Summary.ProjectName}}

Run {{.RunID}} generated on {{.GeneratedAt.Format "2006-01-02"}}.

{{range .ADRs}}## ADR-{{printf "%03d" .ID}}: {{.Title}}

**Status:** {{.Status}} ({{.DateCreated}})

### Context

{{.Context}}

### Decision

{{.Decision}}

### Consequences

{{range .Consequences}}- {{.}}
{{end}}
{{- if .Alternatives}}
### Alternatives Considered

{{range .Alternatives}}**{{.Name}}**
{{range .Pros}}- Pro: {{.}}
{{end}}{{range .Cons}}- Con: {{.}}
{{end}}
{{end}}
{{- end}}
{{end}}
{{- if .Clarifications}}
## Clarification Record

{{range .Clarifications}}- **Q:** {{.Question}}
{{- if .Skipped}}
  **A:** (skipped)
{{- else}}
  **A:** {{.Answer}}
{{- end}}
{{end}}
{{- end}}`))
