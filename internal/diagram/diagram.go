// Package diagram renders Mermaid diagram sources for a planned project:
// system context, containers, entity relationships and sequence flows.
// Every generator is a pure function of the summary and research result.
package diagram

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// entityRule maps a domain noun found in features or the description to
// an inferred entity with its display fields.
type entityRule struct {
	Noun   string
	Entity string
	Fields []string
}

var entityRules = []entityRule{
	{Noun: "task", Entity: "TASK", Fields: []string{"string title", "string status", "datetime due_at"}},
	{Noun: "project", Entity: "PROJECT", Fields: []string{"string name", "string description"}},
	{Noun: "comment", Entity: "COMMENT", Fields: []string{"string body", "datetime created_at"}},
	{Noun: "product", Entity: "PRODUCT", Fields: []string{"string name", "decimal price"}},
	{Noun: "order", Entity: "ORDER", Fields: []string{"string status", "decimal total"}},
}

// SystemContext renders the context diagram: the user, the system, and
// external systems inferred from feature keywords.
func SystemContext(summary types.ProjectSummary, research *types.ResearchResult) string {
	var sb strings.Builder
	sb.WriteString("flowchart TB\n")
	sb.WriteString("    user([\"User\"])\n")
	fmt.Fprintf(&sb, "    system[\"%s\"]\n", systemLabel(summary))
	sb.WriteString("    user --> system\n")

	if hasFeatureKeyword(research, "payment", "checkout") {
		sb.WriteString("    payments[\"Payment Provider\"]\n")
		sb.WriteString("    system --> payments\n")
	}
	if hasFeatureKeyword(research, "storage", "upload", "file", "media") {
		sb.WriteString("    objectstore[\"Object Storage\"]\n")
		sb.WriteString("    system --> objectstore\n")
	}
	if hasFeatureKeyword(research, "email", "notification") {
		sb.WriteString("    mailer[\"Email Service\"]\n")
		sb.WriteString("    system --> mailer\n")
	}
	return sb.String()
}

// Container renders the container diagram. A real-time feature adds a
// websocket container and cache pair; an auth feature adds an auth
// container.
func Container(summary types.ProjectSummary, research *types.ResearchResult) string {
	var sb strings.Builder
	sb.WriteString("flowchart TB\n")

	frontend := "Web App"
	if research.RecommendedTechStack.Frontend != nil {
		frontend = research.RecommendedTechStack.Frontend.Framework
	}
	backend := "API Server"
	if research.RecommendedTechStack.Backend != nil {
		backend = research.RecommendedTechStack.Backend.Framework
	}
	database := "Database"
	if research.RecommendedTechStack.Database != nil {
		database = research.RecommendedTechStack.Database.Framework
	}

	fmt.Fprintf(&sb, "    web[\"Frontend<br/>%s\"]\n", frontend)
	fmt.Fprintf(&sb, "    api[\"Backend<br/>%s\"]\n", backend)
	fmt.Fprintf(&sb, "    db[(\"%s\")]\n", database)
	sb.WriteString("    web --> api\n")
	sb.WriteString("    api --> db\n")

	if hasFeatureKeyword(research, "auth", "login") {
		sb.WriteString("    auth[\"Auth Service\"]\n")
		sb.WriteString("    api --> auth\n")
	}
	if hasFeatureKeyword(research, "real-time", "realtime", "websocket", "live") {
		sb.WriteString("    ws[\"Realtime Gateway\"]\n")
		sb.WriteString("    cache[(\"Cache / PubSub\")]\n")
		sb.WriteString("    web --> ws\n")
		sb.WriteString("    ws --> cache\n")
		sb.WriteString("    api --> cache\n")
	}
	return sb.String()
}

// EntityRelationship renders an erDiagram with entities inferred from
// domain nouns in the features and description, defaulting to a generic
// User/Item pair.
func EntityRelationship(summary types.ProjectSummary, research *types.ResearchResult) string {
	haystack := strings.ToLower(summary.Description)
	for _, f := range research.RequiredFeatures {
		haystack += " " + strings.ToLower(f.Name)
	}

	var matched []entityRule
	for _, rule := range entityRules {
		if strings.Contains(haystack, rule.Noun) {
			matched = append(matched, rule)
		}
	}

	var sb strings.Builder
	sb.WriteString("erDiagram\n")
	sb.WriteString("    USER {\n        string email\n        string name\n    }\n")

	if len(matched) == 0 {
		sb.WriteString("    ITEM {\n        string name\n        string status\n    }\n")
		sb.WriteString("    USER ||--o{ ITEM : owns\n")
		return sb.String()
	}

	for _, rule := range matched {
		fmt.Fprintf(&sb, "    %s {\n", rule.Entity)
		for _, field := range rule.Fields {
			fmt.Fprintf(&sb, "        %s\n", field)
		}
		sb.WriteString("    }\n")
	}
	for _, rule := range matched {
		fmt.Fprintf(&sb, "    USER ||--o{ %s : owns\n", rule.Entity)
	}
	return sb.String()
}

// SequenceFlows renders the sequence diagrams: a generic CRUD flow
// always, plus an auth flow when an auth feature is present.
func SequenceFlows(summary types.ProjectSummary, research *types.ResearchResult) []string {
	flows := []string{crudFlow()}
	if hasFeatureKeyword(research, "auth", "login") {
		flows = append(flows, authFlow())
	}
	return flows
}

func crudFlow() string {
	return strings.Join([]string{
		"sequenceDiagram",
		"    participant C as Client",
		"    participant A as API",
		"    participant D as Database",
		"    C->>A: POST /api/v1/items",
		"    A->>A: validate payload",
		"    A->>D: INSERT item",
		"    D-->>A: item row",
		"    A-->>C: 201 Created",
		"    C->>A: GET /api/v1/items",
		"    A->>D: SELECT items",
		"    D-->>A: rows",
		"    A-->>C: 200 OK",
	}, "\n") + "\n"
}

func authFlow() string {
	return strings.Join([]string{
		"sequenceDiagram",
		"    participant C as Client",
		"    participant A as API",
		"    participant D as Database",
		"    C->>A: POST /api/v1/auth/login",
		"    A->>D: SELECT user by email",
		"    D-->>A: user row",
		"    A->>A: verify password hash",
		"    A-->>C: 200 OK + access token",
		"    C->>A: GET /api/v1/me (Bearer token)",
		"    A->>A: verify token",
		"    A-->>C: 200 OK",
	}, "\n") + "\n"
}

func systemLabel(summary types.ProjectSummary) string {
	if summary.ProjectName != "" {
		return summary.ProjectName
	}
	return "System"
}

func hasFeatureKeyword(research *types.ResearchResult, keywords ...string) bool {
	for _, f := range research.RequiredFeatures {
		lower := strings.ToLower(f.Name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
