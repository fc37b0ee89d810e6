// Package quality scores an assembled build-spec document against a
// fixed rubric: every numbered section must exist with real content,
// vague language is penalized and placeholder text is flagged. The
// validator is pure text analysis with no model calls.
package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// PassingScore is the quality-gate threshold. The gate also requires
// zero errors and fewer than MaxVagueTerms vague-term occurrences.
const (
	PassingScore  = 80
	MaxVagueTerms = 10
)

// SectionTitles is the canonical outline of a build-spec document. The
// validator scores exactly these numbered sections.
var SectionTitles = [18]string{
	"Project Overview",
	"Goals & Success Criteria",
	"Features & Requirements",
	"Technical Architecture",
	"Tech Stack",
	"Data Model",
	"API Design",
	"Agent Team & Responsibilities",
	"Development Phases",
	"Architecture Decision Records",
	"System Diagrams",
	"Tool & Package Recommendations",
	"Dependency Risk Assessment",
	"Cost Estimate",
	"Security Considerations",
	"Testing Strategy",
	"Deployment & Operations",
	"Open Questions & Assumptions",
}

// vagueTerm pairs a watched phrase with the rewrite suggestion shown
// in the report. Matching is case-insensitive on word boundaries.
type vagueTerm struct {
	Term       string
	Suggestion string
}

var vagueTerms = []vagueTerm{
	{Term: "TBD", Suggestion: "Replace with a concrete decision or move to Open Questions"},
	{Term: "TODO", Suggestion: "Resolve the item or track it as an explicit task"},
	{Term: "maybe", Suggestion: "Commit to one option and record the tradeoff"},
	{Term: "approximately", Suggestion: "State the measured or estimated number"},
	{Term: "roughly", Suggestion: "State the measured or estimated number"},
	{Term: "somehow", Suggestion: "Describe the actual mechanism"},
	{Term: "eventually", Suggestion: "Name the milestone or phase"},
	{Term: "possibly", Suggestion: "Commit to one option and record the tradeoff"},
	{Term: "probably", Suggestion: "Verify the claim and state it plainly"},
	{Term: "various", Suggestion: "Enumerate the actual items"},
	{Term: "numerous", Suggestion: "Enumerate the actual items"},
	{Term: "etc", Suggestion: "Complete the list or cut the trailing etc"},
	{Term: "as needed", Suggestion: "Specify the trigger condition"},
	{Term: "some kind of", Suggestion: "Name the concrete component"},
}

var placeholderPatterns = []string{
	"lorem ipsum",
	"[placeholder]",
	"coming soon",
	"fixme",
	"xxx",
}

var sectionHeadingRe = regexp.MustCompile(`(?m)^#{1,3}\s*(\d+)\.\s+(.+)$`)

// Validate scores the assembled document and its companion decisions
// file and returns the full report. It never returns an error; every
// problem becomes a classified finding.
func Validate(documentText, decisionsText string) *types.QualityReport {
	report := &types.QualityReport{
		SectionScores: make(map[string]int, len(SectionTitles)),
	}

	if strings.TrimSpace(documentText) == "" {
		report.Errors = append(report.Errors, "document is empty")
		report.RequiredFixes = append(report.RequiredFixes, "Regenerate the document; no content was produced")
		return report
	}

	report.VagueTermsFound = scanVagueTerms(documentText)
	scanPlaceholders(documentText, report)
	scoreSections(documentText, report)

	if strings.TrimSpace(decisionsText) == "" {
		report.Warnings = append(report.Warnings, "decisions file is empty; architecture decisions are undocumented")
	}

	report.OverallScore = overallScore(report)
	report.PassedQualityGate = report.OverallScore >= PassingScore &&
		len(report.Errors) == 0 &&
		len(report.VagueTermsFound) < MaxVagueTerms

	if !report.PassedQualityGate {
		report.RequiredFixes = requiredFixes(report)
	}
	return report
}

var vagueTermRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(vagueTerms))
	for i, vt := range vagueTerms {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(vt.Term) + `\b`)
	}
	return res
}()

func scanVagueTerms(text string) []types.VagueTerm {
	var found []types.VagueTerm
	for lineNo, line := range strings.Split(text, "\n") {
		for i, vt := range vagueTerms {
			for range vagueTermRes[i].FindAllStringIndex(line, -1) {
				found = append(found, types.VagueTerm{
					Term:       vt.Term,
					Location:   fmt.Sprintf("line %d", lineNo+1),
					Suggestion: vt.Suggestion,
				})
			}
		}
	}
	return found
}

func scanPlaceholders(text string, report *types.QualityReport) {
	lower := strings.ToLower(text)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(lower, pattern) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("placeholder text %q found in document", pattern))
		}
	}
}

// scoreSections splits the document at numbered headings and scores
// each canonical section by word count.
func scoreSections(text string, report *types.QualityReport) {
	bodies := sectionBodies(text)
	for i, title := range SectionTitles {
		num := i + 1
		key := fmt.Sprintf("%d. %s", num, title)
		body, ok := bodies[num]
		if !ok {
			report.SectionScores[key] = 0
			report.Errors = append(report.Errors, fmt.Sprintf("missing section %s", key))
			report.MissingDetails = append(report.MissingDetails, key)
			continue
		}
		words := len(strings.Fields(body))
		score := wordCountScore(words)
		report.SectionScores[key] = score
		if score <= 40 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("section %s is thin (%d words)", key, words))
			report.Suggestions = append(report.Suggestions, fmt.Sprintf("Expand section %s with concrete detail", key))
		}
	}
}

func sectionBodies(text string) map[int]string {
	matches := sectionHeadingRe.FindAllStringSubmatchIndex(text, -1)
	bodies := make(map[int]string, len(matches))
	for i, m := range matches {
		var num int
		fmt.Sscanf(text[m[2]:m[3]], "%d", &num)
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		if _, seen := bodies[num]; !seen {
			bodies[num] = text[start:end]
		}
	}
	return bodies
}

func wordCountScore(words int) int {
	switch {
	case words > 200:
		return 100
	case words > 100:
		return 80
	case words > 50:
		return 60
	default:
		return 40
	}
}

func overallScore(report *types.QualityReport) int {
	var sum int
	for _, s := range report.SectionScores {
		sum += s
	}
	avg := sum / len(SectionTitles)

	vaguePenalty := len(report.VagueTermsFound)
	if vaguePenalty > 20 {
		vaguePenalty = 20
	}
	errorPenalty := len(report.Errors) * 5
	if errorPenalty > 30 {
		errorPenalty = 30
	}

	score := avg - vaguePenalty - errorPenalty
	if score < 0 {
		score = 0
	}
	return score
}

func requiredFixes(report *types.QualityReport) []string {
	var fixes []string
	for _, e := range report.Errors {
		fixes = append(fixes, "Fix: "+e)
	}
	if n := len(report.VagueTermsFound); n >= MaxVagueTerms {
		fixes = append(fixes, fmt.Sprintf("Reduce vague language: %d occurrences found, fewer than %d required", n, MaxVagueTerms))
	}
	if report.OverallScore < PassingScore {
		fixes = append(fixes, fmt.Sprintf("Raise the overall score to at least %d (currently %d)", PassingScore, report.OverallScore))
	}
	return fixes
}
