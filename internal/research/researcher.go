// Package research implements the first pipeline stage: deriving required
// features, a technology stack, an architecture pattern, and complexity
// and timeline estimates from a project summary.
//
// The stage is dual-mode. A remote-reasoning implementation is selected
// once at construction when a syntactically valid credential is present;
// otherwise the deterministic local heuristic runs. A remote failure is
// fatal for this stage: the mode is never re-evaluated mid-request.
package research

import (
	"context"

	"github.com/josephgoksu/PlanWing/internal/llm"
	"github.com/josephgoksu/PlanWing/types"
)

// StageName tags errors and log records from this stage.
const StageName = "research"

// Researcher analyzes a project summary into a research result.
type Researcher interface {
	// Analyze derives the research result. Remote implementations may
	// fail with *types.RemoteReasoningError; the local heuristic never
	// errors on well-formed input.
	Analyze(ctx context.Context, summary types.ProjectSummary, enrichment *types.InputEnrichment) (*types.ResearchResult, error)

	// Mode reports which implementation was selected at construction.
	Mode() Mode
}

// Mode identifies the selected analysis implementation.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)

// New selects the analysis mode from credential presence. The selection
// is cached for the instance's lifetime.
func New(cfg llm.Config) Researcher {
	if cfg.HasCredential() {
		return newRemoteResearcher(cfg)
	}
	return newHeuristicResearcher()
}
