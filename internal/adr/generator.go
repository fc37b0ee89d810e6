// Package adr generates Architecture Decision Records for a planned
// project.
//
// Like the research stage this component is dual-mode, but with the
// opposite failure policy: when a credential is configured it attempts
// the remote path and degrades to the local generator at runtime on any
// remote failure. The two policies are explicit configuration on the same
// strategy shape, not divergent code paths.
package adr

import (
	"context"
	"log/slog"

	"github.com/josephgoksu/PlanWing/internal/llm"
	"github.com/josephgoksu/PlanWing/types"
)

// StageName tags errors and log records from this stage.
const StageName = "adr"

// MaxADRs caps the record count; remote over-production is truncated.
const MaxADRs = 8

// FallbackPolicy decides whether to attempt the remote path and whether a
// remote failure degrades to the local generator.
type FallbackPolicy struct {
	AttemptRemote bool
	FallbackLocal bool
}

// Generator produces the ADR set for a pipeline run.
type Generator struct {
	cfg    llm.Config
	policy FallbackPolicy
}

// New builds a generator whose policy is derived from credential
// presence: remote-with-fallback when configured, local-only otherwise.
func New(cfg llm.Config) *Generator {
	return &Generator{
		cfg: cfg,
		policy: FallbackPolicy{
			AttemptRemote: cfg.HasCredential(),
			FallbackLocal: true,
		},
	}
}

// NewWithPolicy builds a generator with an explicit policy, used by tests
// and callers that need to pin a behavior.
func NewWithPolicy(cfg llm.Config, policy FallbackPolicy) *Generator {
	return &Generator{cfg: cfg, policy: policy}
}

// Generate produces 5-8 ADRs with IDs assigned in generation order.
// A remote failure under a fallback policy is logged and recovered
// locally; the caller only sees an error when no path can produce output.
func (g *Generator) Generate(ctx context.Context, summary types.ProjectSummary, research *types.ResearchResult, enrichment *types.InputEnrichment, clarifications []types.ClarificationQA) ([]types.ADR, error) {
	if g.policy.AttemptRemote {
		adrs, err := g.generateRemote(ctx, summary, research, enrichment, clarifications)
		if err == nil {
			return assignIDs(truncate(adrs)), nil
		}
		if !g.policy.FallbackLocal {
			return nil, err
		}
		slog.Warn("remote ADR generation failed, falling back to local generator",
			"stage", StageName, "error", err)
	}

	return assignIDs(generateLocal(summary, research, enrichment)), nil
}

// assignIDs numbers records 1..n in generation order.
func assignIDs(adrs []types.ADR) []types.ADR {
	for i := range adrs {
		adrs[i].ID = i + 1
	}
	return adrs
}

func truncate(adrs []types.ADR) []types.ADR {
	if len(adrs) > MaxADRs {
		return adrs[:MaxADRs]
	}
	return adrs
}
