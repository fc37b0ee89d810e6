package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/josephgoksu/PlanWing/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

// renderRunSummary formats the post-run console summary.
func renderRunSummary(pkg *types.PlanPackage, specPath, decisionsPath string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Plan generated for %s", pkg.Summary.ProjectName)))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("run %s", pkg.RunID)))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%s %d features, %d agents, %d decisions, %d tool recommendations\n",
		labelStyle.Render("Scope:"),
		len(pkg.Research.RequiredFeatures), pkg.Team.TotalAgents, len(pkg.ADRs), pkg.Tools.TotalRecommendations)
	fmt.Fprintf(&sb, "%s $%.0f/month infrastructure, %.0f development hours\n",
		labelStyle.Render("Cost:"), pkg.Costs.TotalMonthly, pkg.Team.EstimatedTotalHours)
	if len(pkg.Risks) > 0 {
		fmt.Fprintf(&sb, "%s %d dependencies flagged for review\n", labelStyle.Render("Risk:"), len(pkg.Risks))
	}

	sb.WriteString("\n")
	sb.WriteString(renderQualitySummary(pkg.Quality))

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Spec:"), specPath)
	fmt.Fprintf(&sb, "%s %s", labelStyle.Render("Decisions:"), decisionsPath)
	return sb.String()
}

// renderQualitySummary formats a quality report for the console.
func renderQualitySummary(report *types.QualityReport) string {
	var sb strings.Builder

	verdict := passStyle.Render("PASSED")
	if !report.PassedQualityGate {
		verdict = failStyle.Render("FAILED")
	}
	fmt.Fprintf(&sb, "%s %d/100 · quality gate %s\n", labelStyle.Render("Score:"), report.OverallScore, verdict)

	if n := len(report.VagueTermsFound); n > 0 {
		fmt.Fprintf(&sb, "%s\n", dimStyle.Render(fmt.Sprintf("  %d vague-language findings", n)))
	}
	for _, e := range report.Errors {
		fmt.Fprintf(&sb, "  %s %s\n", failStyle.Render("error:"), e)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(&sb, "  %s %s\n", dimStyle.Render("warn:"), w)
	}
	for _, fix := range report.RequiredFixes {
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("fix:"), fix)
	}
	return sb.String()
}
