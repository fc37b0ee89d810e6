package research

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// heuristicResearcher is the deterministic local path. It never errors on
// well-formed input; empty summaries produce a complete low-complexity
// result via defaults.
type heuristicResearcher struct{}

func newHeuristicResearcher() *heuristicResearcher {
	return &heuristicResearcher{}
}

func (h *heuristicResearcher) Mode() Mode { return ModeLocal }

func (h *heuristicResearcher) Analyze(_ context.Context, summary types.ProjectSummary, enrichment *types.InputEnrichment) (*types.ResearchResult, error) {
	features := h.deriveFeatures(summary, enrichment)

	result := &types.ResearchResult{
		RequiredFeatures: features,
		RecommendedTechStack: types.TechStackRecommendation{
			Backend:  ptr(matchStack(summary.TechStack.Backend, backendStackRules, defaultBackendStack)),
			Frontend: ptr(matchStack(summary.TechStack.Frontend, frontendStackRules, defaultFrontendStack)),
			Database: ptr(matchStack(databaseHints(summary.TechStack.Database), databaseStackRules, defaultDatabaseStack)),
		},
		Architecture:        h.recommendArchitecture(summary, enrichment),
		EstimatedComplexity: h.estimateComplexity(summary, features),
	}
	result.EstimatedTimeline = h.estimateTimeline(summary, result)
	return result, nil
}

// deriveFeatures scores every explicit feature, then appends implied
// features triggered by the description when nothing already covers them.
func (h *heuristicResearcher) deriveFeatures(summary types.ProjectSummary, enrichment *types.InputEnrichment) []types.Feature {
	features := make([]types.Feature, 0, len(summary.Features)+len(impliedFeatureRules))

	for _, name := range summary.Features {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		rule := scoreFeature(trimmed)
		features = append(features, types.Feature{
			Name:           trimmed,
			Priority:       rule.Priority,
			Complexity:     rule.Complexity,
			EstimatedHours: rule.Hours,
		})
	}

	desc := strings.ToLower(summary.Description)
	for _, rule := range impliedFeatureRules {
		if !containsAny(desc, rule.Triggers) {
			continue
		}
		if matchesExisting(features, rule.CoveredBy) {
			continue
		}
		features = append(features, rule.Feature)
	}

	return applyPriorityOverrides(features, enrichment)
}

// applyPriorityOverrides lets explicit enrichment priorities win over
// keyword scoring, matched by name substring.
func applyPriorityOverrides(features []types.Feature, enrichment *types.InputEnrichment) []types.Feature {
	if enrichment == nil || len(enrichment.FeaturePriorities) == 0 {
		return features
	}
	for i, f := range features {
		lower := strings.ToLower(f.Name)
		for key, prio := range enrichment.FeaturePriorities {
			if strings.Contains(lower, strings.ToLower(key)) {
				features[i].Priority = prio
			}
		}
	}
	return features
}

func (h *heuristicResearcher) recommendArchitecture(summary types.ProjectSummary, enrichment *types.InputEnrichment) types.ArchitectureChoice {
	if enrichment != nil && enrichment.ArchitectureStyle != "" {
		return types.ArchitectureChoice{
			Pattern:   enrichment.ArchitectureStyle,
			Reasoning: "Architecture style stated explicitly in the enrichment input.",
		}
	}

	desc := strings.ToLower(summary.Description)
	for _, rule := range archRules {
		if containsAny(desc, rule.Keywords) {
			return types.ArchitectureChoice{Pattern: rule.Pattern, Reasoning: rule.Reasoning}
		}
	}

	if parseTeamSize(summary.TeamSize) == 1 || strings.Contains(desc, "mvp") {
		return types.ArchitectureChoice{
			Pattern:   archMonolithMVP,
			Reasoning: "A solo team or stated MVP goal favors a single deployable with minimal operational surface.",
		}
	}

	return types.ArchitectureChoice{
		Pattern:   archMonolith,
		Reasoning: "No distribution requirement detected; a monolith keeps deployment and debugging simple.",
	}
}

// estimateComplexity accumulates weighted points and buckets them.
// Thresholds: >=4 high, >=2 medium, else low. The score is monotonic in
// feature count.
func (h *heuristicResearcher) estimateComplexity(summary types.ProjectSummary, features []types.Feature) types.Complexity {
	score := 0

	switch n := len(features); {
	case n > 10:
		score += 2
	case n > 5:
		score += 1
	}

	haystack := strings.ToLower(summary.Description + " " + strings.Join(summary.Features, " "))
	for _, f := range features {
		haystack += " " + strings.ToLower(f.Name)
	}
	for _, w := range complexityKeywordWeights {
		if containsAny(haystack, w.Keywords) {
			score += w.Points
		}
	}

	// Long stated timelines signal scope the feature list understates.
	tl := strings.ToLower(summary.Timeline)
	if strings.Contains(tl, "month") || strings.Contains(tl, "quarter") || strings.Contains(tl, "year") {
		score++
	}

	switch {
	case score >= 4:
		return types.ComplexityHigh
	case score >= 2:
		return types.ComplexityMedium
	default:
		return types.ComplexityLow
	}
}

// estimateTimeline passes an explicit timeline through verbatim,
// otherwise derives working weeks from total feature hours and team size.
func (h *heuristicResearcher) estimateTimeline(summary types.ProjectSummary, result *types.ResearchResult) string {
	if strings.TrimSpace(summary.Timeline) != "" {
		return summary.Timeline
	}

	teamSize := parseTeamSize(summary.TeamSize)
	weeks := result.TotalFeatureHours() / (float64(teamSize) * 40)
	for _, b := range timelineBuckets {
		if weeks <= b.MaxWeeks {
			return b.Label
		}
	}
	return timelineOpenEnded
}

// parseTeamSize extracts the first integer from a free-text team size,
// defaulting to 1.
func parseTeamSize(s string) int {
	for _, field := range strings.Fields(s) {
		if n, err := strconv.Atoi(strings.Trim(field, ",.")); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

func databaseHints(db string) []string {
	if db == "" {
		return nil
	}
	return []string{db}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if matchKeyword(s, kw) {
			return true
		}
	}
	return false
}

func matchesExisting(features []types.Feature, keywords []string) bool {
	for _, f := range features {
		lower := strings.ToLower(f.Name)
		for _, kw := range keywords {
			if matchKeyword(lower, kw) {
				return true
			}
		}
	}
	return false
}

func ptr(c types.StackChoice) *types.StackChoice { return &c }

// Describe renders a short one-line summary for logs.
func Describe(r *types.ResearchResult) string {
	return fmt.Sprintf("%d features, %s complexity, %s", len(r.RequiredFeatures), r.EstimatedComplexity, r.Architecture.Pattern)
}
