package research

import (
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// The heuristic path is driven by ordered rule tables rather than
// scattered conditionals so the rule set itself is testable. First match
// wins within each table.

// featureScoreRule scores an explicit feature string by keyword.
type featureScoreRule struct {
	Keywords   []string
	Priority   types.Priority
	Complexity types.Complexity
	Hours      float64
}

var featureScoreRules = []featureScoreRule{
	{Keywords: []string{"auth", "login", "signup", "registration"}, Priority: types.PriorityCritical, Complexity: types.ComplexityMedium, Hours: 16},
	{Keywords: []string{"real-time", "realtime", "websocket", "live"}, Priority: types.PriorityHigh, Complexity: types.ComplexityHigh, Hours: 24},
	{Keywords: []string{"ai", "machine learning", "ml model", "recommendation"}, Priority: types.PriorityHigh, Complexity: types.ComplexityHigh, Hours: 32},
	{Keywords: []string{"payment", "checkout", "billing", "subscription"}, Priority: types.PriorityHigh, Complexity: types.ComplexityHigh, Hours: 24},
	{Keywords: []string{"search", "filter"}, Priority: types.PriorityMedium, Complexity: types.ComplexityMedium, Hours: 12},
	{Keywords: []string{"upload", "file", "image", "media"}, Priority: types.PriorityMedium, Complexity: types.ComplexityMedium, Hours: 12},
	{Keywords: []string{"notification", "email"}, Priority: types.PriorityMedium, Complexity: types.ComplexityMedium, Hours: 10},
	{Keywords: []string{"display", "view", "simple", "static"}, Priority: types.PriorityLow, Complexity: types.ComplexityLow, Hours: 6},
}

// defaultFeatureScore applies when no keyword rule matches.
var defaultFeatureScore = featureScoreRule{
	Priority:   types.PriorityMedium,
	Complexity: types.ComplexityMedium,
	Hours:      16,
}

// scoreFeature returns the first matching rule for a feature string.
func scoreFeature(name string) featureScoreRule {
	lower := strings.ToLower(name)
	for _, rule := range featureScoreRules {
		for _, kw := range rule.Keywords {
			if matchKeyword(lower, kw) {
				return rule
			}
		}
	}
	return defaultFeatureScore
}

// matchKeyword reports whether kw occurs in s. Keywords of three
// characters or fewer match whole words only, so "ai" never fires on
// "email" and "api" never fires on "rapid".
func matchKeyword(s, kw string) bool {
	if len(kw) > 3 {
		return strings.Contains(s, kw)
	}
	for idx := 0; ; {
		i := strings.Index(s[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		if (start == 0 || !isWordChar(s[start-1])) && (end == len(s) || !isWordChar(s[end])) {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// impliedFeatureRule appends a feature when the free-text description
// mentions its triggers and no explicit feature already covers them.
type impliedFeatureRule struct {
	Triggers []string
	// CoveredBy marks an existing feature as already covering this
	// concern; usually the triggers plus close synonyms.
	CoveredBy []string
	Feature   types.Feature
}

var impliedFeatureRules = []impliedFeatureRule{
	{
		Triggers:  []string{"user", "login", "auth"},
		CoveredBy: []string{"auth", "login", "user"},
		Feature: types.Feature{
			Name:           "User Authentication & Authorization",
			Priority:       types.PriorityCritical,
			Complexity:     types.ComplexityMedium,
			EstimatedHours: 16,
		},
	},
	{
		Triggers:  []string{"store", "save", "data"},
		CoveredBy: []string{"persist", "database", "storage", "store", "data"},
		Feature: types.Feature{
			Name:           "Data Persistence",
			Priority:       types.PriorityHigh,
			Complexity:     types.ComplexityMedium,
			EstimatedHours: 12,
		},
	},
	{
		Triggers:  []string{"api", "backend"},
		CoveredBy: []string{"api", "endpoint", "backend"},
		Feature: types.Feature{
			Name:           "RESTful API Layer",
			Priority:       types.PriorityHigh,
			Complexity:     types.ComplexityMedium,
			EstimatedHours: 12,
		},
	},
}

// stackRule maps a stated hint substring to a framework recommendation.
type stackRule struct {
	Hints     []string
	Framework string
	Reasoning string
}

var backendStackRules = []stackRule{
	{Hints: []string{"node", "express", "typescript"}, Framework: "Express.js with TypeScript", Reasoning: "Matches the stated Node.js preference; mature ecosystem with typed APIs."},
	{Hints: []string{"python", "fastapi", "django"}, Framework: "FastAPI", Reasoning: "Matches the stated Python preference; async-first with generated OpenAPI docs."},
	{Hints: []string{"go", "golang", "gin"}, Framework: "Gin", Reasoning: "Matches the stated Go preference; minimal, fast HTTP framework."},
}

var defaultBackendStack = stackRule{
	Framework: "Express.js with TypeScript",
	Reasoning: "Sensible default for general web backends: large ecosystem, easy hiring, typed contracts.",
}

var frontendStackRules = []stackRule{
	{Hints: []string{"next"}, Framework: "Next.js", Reasoning: "Matches the stated Next.js preference; SSR and file-based routing out of the box."},
	{Hints: []string{"vue"}, Framework: "Vue 3", Reasoning: "Matches the stated Vue preference; composition API with a gentle learning curve."},
	{Hints: []string{"react"}, Framework: "Next.js", Reasoning: "React preference stated; Next.js adds routing, SSR and build tooling on top."},
}

var defaultFrontendStack = stackRule{
	Framework: "Next.js",
	Reasoning: "Default choice for product frontends: React ecosystem with SSR and strong conventions.",
}

var databaseStackRules = []stackRule{
	{Hints: []string{"postgres"}, Framework: "PostgreSQL", Reasoning: "Matches the stated PostgreSQL preference; relational integrity with JSONB flexibility."},
	{Hints: []string{"mongo"}, Framework: "MongoDB", Reasoning: "Matches the stated MongoDB preference; document model fits flexible schemas."},
	{Hints: []string{"mysql"}, Framework: "MySQL", Reasoning: "Matches the stated MySQL preference; proven relational store with wide hosting support."},
}

var defaultDatabaseStack = stackRule{
	Framework: "PostgreSQL",
	Reasoning: "Default relational store: ACID guarantees, rich indexing, and broad managed-hosting options.",
}

// matchStack returns the first rule whose hint substring appears in any
// of the stated hints, else the given default.
func matchStack(hints []string, rules []stackRule, fallback stackRule) types.StackChoice {
	for _, stated := range hints {
		lower := strings.ToLower(stated)
		for _, rule := range rules {
			for _, h := range rule.Hints {
				if strings.Contains(lower, h) {
					return types.StackChoice{Framework: rule.Framework, Reasoning: rule.Reasoning}
				}
			}
		}
	}
	return types.StackChoice{Framework: fallback.Framework, Reasoning: fallback.Reasoning}
}

// archRule maps description keywords to an architecture pattern.
type archRule struct {
	Keywords  []string
	Pattern   string
	Reasoning string
}

var archRules = []archRule{
	{Keywords: []string{"microservice", "distributed"}, Pattern: "Microservices", Reasoning: "The description calls for independently deployable, distributed components."},
	{Keywords: []string{"serverless", "lambda"}, Pattern: "Serverless", Reasoning: "The description targets managed, event-driven compute with no server operations."},
}

const (
	archMonolithMVP = "Monolithic (MVP-first)"
	archMonolith    = "Monolithic"
)

// complexityWeight is one additive signal in the overall complexity score.
type complexityWeight struct {
	Keywords []string
	Points   int
}

var complexityKeywordWeights = []complexityWeight{
	{Keywords: []string{"real-time", "realtime", "ai", "machine learning"}, Points: 2},
	{Keywords: []string{"payment"}, Points: 1},
	{Keywords: []string{"auth", "login"}, Points: 1},
}

// timelineBucket maps derived working weeks to a coarse estimate.
type timelineBucket struct {
	MaxWeeks float64
	Label    string
}

var timelineBuckets = []timelineBucket{
	{MaxWeeks: 2, Label: "1-2 weeks"},
	{MaxWeeks: 4, Label: "3-4 weeks"},
	{MaxWeeks: 8, Label: "6-8 weeks"},
	{MaxWeeks: 12, Label: "2-3 months"},
}

const timelineOpenEnded = "3+ months"
