// Package risk flags recommended packages that deserve extra scrutiny
// before adoption. Findings come from fixed category tables matched by
// substring against package names; the highest matching level wins.
package risk

import (
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// riskCategory is one table of watchlist packages sharing a risk
// profile. Patterns match case-insensitively as substrings of the
// recommended package name.
type riskCategory struct {
	Name         string
	Level        types.RiskLevel
	Patterns     []string
	Factors      []string
	Mitigation   string
	Alternatives []string
}

var riskCategories = []riskCategory{
	{
		Name:     "security-critical",
		Level:    types.RiskHigh,
		Patterns: []string{"jsonwebtoken", "bcrypt", "crypto", "helmet"},
		Factors: []string{
			"Handles secrets or cryptographic material",
			"A vulnerability here compromises every account",
		},
		Mitigation: "Pin the version, subscribe to security advisories and review every upgrade changelog",
	},
	{
		Name:     "auth",
		Level:    types.RiskMedium,
		Patterns: []string{"passport", "oauth", "auth0", "next-auth"},
		Factors: []string{
			"Sits on the authentication critical path",
			"Misconfiguration commonly leads to session bugs",
		},
		Mitigation:   "Cover login, logout and token refresh with integration tests",
		Alternatives: []string{"lucia", "better-auth"},
	},
	{
		Name:     "database-driver",
		Level:    types.RiskMedium,
		Patterns: []string{"pg", "mysql2", "mongodb", "mongoose", "sqlite3", "prisma"},
		Factors: []string{
			"Schema migrations and connection pooling need operational care",
			"Driver major versions occasionally break query semantics",
		},
		Mitigation: "Run migrations through a reviewed migration tool and test against the production database version",
	},
	{
		Name:     "large-bundle",
		Level:    types.RiskLow,
		Patterns: []string{"moment", "lodash", "axios"},
		Factors: []string{
			"Adds significant bundle weight for functionality the platform partly provides",
		},
		Mitigation:   "Prefer a lighter alternative or import only the needed submodules",
		Alternatives: []string{"date-fns", "es-toolkit", "native fetch"},
	},
	{
		Name:     "known-problematic",
		Level:    types.RiskCritical,
		Patterns: []string{"request", "left-pad", "node-sass", "event-stream"},
		Factors: []string{
			"Deprecated, unmaintained or with a history of supply-chain incidents",
		},
		Mitigation:   "Replace before the first release; do not build new code on it",
		Alternatives: []string{"got", "sass (dart-sass)"},
	},
}

// Analyze inspects every recommended package and returns the findings
// worth surfacing. Packages that match nothing, and low-level findings
// without factors, are dropped. The result is stable for a given input.
func Analyze(recs *types.ToolRecommendations) []types.DependencyRisk {
	if recs == nil {
		return nil
	}
	var findings []types.DependencyRisk
	for _, pkg := range recs.AllPackages() {
		if finding, ok := classify(pkg.Name); ok {
			findings = append(findings, finding)
		}
	}
	return findings
}

func classify(pkg string) (types.DependencyRisk, bool) {
	lower := strings.ToLower(pkg)
	var best *riskCategory
	for i := range riskCategories {
		cat := &riskCategories[i]
		if !matchesAny(lower, cat.Patterns) {
			continue
		}
		if best == nil || cat.Level.MoreSevere(best.Level) {
			best = cat
		}
	}
	if best == nil {
		return types.DependencyRisk{}, false
	}
	if best.Level == types.RiskLow && len(best.Factors) == 0 {
		return types.DependencyRisk{}, false
	}
	return types.DependencyRisk{
		PackageName:  pkg,
		RiskLevel:    best.Level,
		RiskFactors:  best.Factors,
		Mitigation:   best.Mitigation,
		Alternatives: best.Alternatives,
		Category:     best.Name,
	}, true
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
