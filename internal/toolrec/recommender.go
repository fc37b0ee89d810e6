// Package toolrec recommends tooling, packages and services for a planned
// project. Recommendation is pure and table-driven.
package toolrec

import (
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// baselineServers are always recommended.
var baselineServers = []types.ToolRecommendation{
	{Name: "filesystem", Purpose: "Project file access for assistant tooling", Category: "baseline"},
	{Name: "git", Purpose: "Version control operations", Category: "baseline"},
	{Name: "fetch", Purpose: "HTTP retrieval for docs and APIs", Category: "baseline"},
}

// databaseServers maps a recommended database substring to its server.
var databaseServers = []struct {
	Match  string
	Server types.ToolRecommendation
}{
	{"postgres", types.ToolRecommendation{Name: "postgres", Purpose: "Direct PostgreSQL querying during development", Category: "database"}},
	{"mongo", types.ToolRecommendation{Name: "mongodb", Purpose: "Direct MongoDB querying during development", Category: "database"}},
	{"mysql", types.ToolRecommendation{Name: "mysql", Purpose: "Direct MySQL querying during development", Category: "database"}},
	{"sqlite", types.ToolRecommendation{Name: "sqlite", Purpose: "Local SQLite inspection", Category: "database"}},
}

// frameworkBundles maps a framework-name substring to its package bundle.
var frameworkBundles = []struct {
	Match    string
	Packages []types.ToolRecommendation
}{
	{"express", []types.ToolRecommendation{
		{Name: "express", Purpose: "HTTP framework", Category: "backend"},
		{Name: "helmet", Purpose: "Security headers middleware", Category: "backend"},
		{Name: "cors", Purpose: "Cross-origin request handling", Category: "backend"},
	}},
	{"fastapi", []types.ToolRecommendation{
		{Name: "fastapi", Purpose: "Async Python API framework", Category: "backend"},
		{Name: "pydantic", Purpose: "Request/response validation", Category: "backend"},
		{Name: "uvicorn", Purpose: "ASGI server", Category: "backend"},
	}},
	{"gin", []types.ToolRecommendation{
		{Name: "gin-gonic/gin", Purpose: "Go HTTP framework", Category: "backend"},
		{Name: "go-playground/validator", Purpose: "Struct validation", Category: "backend"},
	}},
	{"next", []types.ToolRecommendation{
		{Name: "next", Purpose: "React framework with SSR", Category: "frontend"},
		{Name: "react", Purpose: "UI library", Category: "frontend"},
		{Name: "tailwindcss", Purpose: "Utility-first styling", Category: "frontend"},
	}},
	{"vue", []types.ToolRecommendation{
		{Name: "vue", Purpose: "UI framework", Category: "frontend"},
		{Name: "pinia", Purpose: "State management", Category: "frontend"},
		{Name: "vite", Purpose: "Build tooling", Category: "frontend"},
	}},
}

// baselineDevTools cover validation, testing, linting and formatting.
var baselineDevTools = []types.ToolRecommendation{
	{Name: "zod", Purpose: "Runtime input validation", Category: "validation"},
	{Name: "vitest", Purpose: "Unit testing", Category: "testing"},
	{Name: "playwright", Purpose: "End-to-end testing", Category: "testing"},
	{Name: "eslint", Purpose: "Linting", Category: "linting"},
	{Name: "prettier", Purpose: "Formatting", Category: "formatting"},
}

// authPackages are added when an auth-flavored feature is present.
var authPackages = []types.ToolRecommendation{
	{Name: "jsonwebtoken", Purpose: "JWT issuing and verification", Category: "auth"},
	{Name: "bcrypt", Purpose: "Password hashing", Category: "auth"},
	{Name: "passport", Purpose: "Authentication middleware", Category: "auth"},
}

// servicesByComplexity selects hosting and operations services by tier.
var servicesByComplexity = map[types.Complexity][]types.ToolRecommendation{
	types.ComplexityLow: {
		{Name: "Vercel", Purpose: "Frontend hosting with preview deploys", Category: "hosting"},
		{Name: "Railway", Purpose: "Backend and database hosting", Category: "hosting"},
	},
	types.ComplexityMedium: {
		{Name: "Vercel", Purpose: "Frontend hosting with preview deploys", Category: "hosting"},
		{Name: "Render", Purpose: "Managed backend services", Category: "hosting"},
		{Name: "Sentry", Purpose: "Error tracking", Category: "observability"},
	},
	types.ComplexityHigh: {
		{Name: "AWS ECS", Purpose: "Container orchestration", Category: "hosting"},
		{Name: "AWS RDS", Purpose: "Managed relational database", Category: "hosting"},
		{Name: "Sentry", Purpose: "Error tracking", Category: "observability"},
		{Name: "Datadog", Purpose: "Metrics and log aggregation", Category: "observability"},
	},
}

// Recommend derives the categorized tool recommendations.
func Recommend(summary types.ProjectSummary, research *types.ResearchResult) *types.ToolRecommendations {
	rec := &types.ToolRecommendations{
		MCPServers: append([]types.ToolRecommendation(nil), baselineServers...),
		DevTools:   append([]types.ToolRecommendation(nil), baselineDevTools...),
	}

	if research.RecommendedTechStack.Database != nil {
		dbName := strings.ToLower(research.RecommendedTechStack.Database.Framework)
		for _, entry := range databaseServers {
			if strings.Contains(dbName, entry.Match) {
				rec.MCPServers = append(rec.MCPServers, entry.Server)
				break
			}
		}
	}

	for _, choice := range []*types.StackChoice{research.RecommendedTechStack.Backend, research.RecommendedTechStack.Frontend} {
		if choice == nil {
			continue
		}
		lower := strings.ToLower(choice.Framework)
		for _, bundle := range frameworkBundles {
			if strings.Contains(lower, bundle.Match) {
				rec.NPMPackages = append(rec.NPMPackages, bundle.Packages...)
			}
		}
	}

	if hasAuthFeature(research.RequiredFeatures) {
		rec.NPMPackages = append(rec.NPMPackages, authPackages...)
	}

	rec.Services = append(rec.Services, servicesByComplexity[research.EstimatedComplexity]...)

	rec.TotalRecommendations = len(rec.MCPServers) + len(rec.NPMPackages) + len(rec.DevTools) + len(rec.Services)
	return rec
}

func hasAuthFeature(features []types.Feature) bool {
	for _, f := range features {
		lower := strings.ToLower(f.Name)
		if strings.Contains(lower, "auth") || strings.Contains(lower, "login") {
			return true
		}
	}
	return false
}
