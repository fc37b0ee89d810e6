package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/PlanWing/types"
)

func recsWith(packages ...string) *types.ToolRecommendations {
	return &types.ToolRecommendations{
		NPMPackages: func() []types.ToolRecommendation {
			var out []types.ToolRecommendation
			for _, p := range packages {
				out = append(out, types.ToolRecommendation{Name: p, Purpose: "test", Category: "npm"})
			}
			return out
		}(),
	}
}

func findingFor(findings []types.DependencyRisk, pkg string) *types.DependencyRisk {
	for i := range findings {
		if findings[i].PackageName == pkg {
			return &findings[i]
		}
	}
	return nil
}

func TestAnalyze_Classification(t *testing.T) {
	findings := Analyze(recsWith("jsonwebtoken", "passport", "pg", "moment", "request", "zod"))

	t.Run("security-critical packages are high", func(t *testing.T) {
		f := findingFor(findings, "jsonwebtoken")
		require.NotNil(t, f)
		assert.Equal(t, types.RiskHigh, f.RiskLevel)
		assert.Equal(t, "security-critical", f.Category)
	})

	t.Run("auth packages are medium with alternatives", func(t *testing.T) {
		f := findingFor(findings, "passport")
		require.NotNil(t, f)
		assert.Equal(t, types.RiskMedium, f.RiskLevel)
		assert.NotEmpty(t, f.Alternatives)
	})

	t.Run("database drivers are medium", func(t *testing.T) {
		f := findingFor(findings, "pg")
		require.NotNil(t, f)
		assert.Equal(t, types.RiskMedium, f.RiskLevel)
	})

	t.Run("deprecated packages are critical", func(t *testing.T) {
		f := findingFor(findings, "request")
		require.NotNil(t, f)
		assert.Equal(t, types.RiskCritical, f.RiskLevel)
	})

	t.Run("unlisted packages produce no finding", func(t *testing.T) {
		assert.Nil(t, findingFor(findings, "zod"))
	})
}

func TestAnalyze_HighestLevelWins(t *testing.T) {
	// "bcryptjs" matches the security-critical "bcrypt" pattern; a name
	// matching multiple tables must take the most severe level.
	findings := Analyze(recsWith("bcryptjs"))
	require.Len(t, findings, 1)
	assert.Equal(t, types.RiskHigh, findings[0].RiskLevel)
}

func TestAnalyze_SurvivorsAreActionable(t *testing.T) {
	findings := Analyze(recsWith("jsonwebtoken", "moment", "mysql2", "event-stream"))
	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.NotEmpty(t, f.RiskFactors, "finding %s", f.PackageName)
		assert.NotEmpty(t, f.Mitigation, "finding %s", f.PackageName)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	recs := recsWith("jsonwebtoken", "moment", "pg")
	first := Analyze(recs)
	second := Analyze(recs)
	assert.Equal(t, first, second)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	assert.Nil(t, Analyze(nil))
	assert.Empty(t, Analyze(&types.ToolRecommendations{}))
}

func TestAnalyze_ScansDevToolsToo(t *testing.T) {
	recs := &types.ToolRecommendations{
		DevTools: []types.ToolRecommendation{{Name: "node-sass", Purpose: "styles", Category: "dev"}},
	}
	findings := Analyze(recs)
	require.Len(t, findings, 1)
	assert.Equal(t, types.RiskCritical, findings[0].RiskLevel)
}
