// Package pipeline orchestrates one planning run: research, team
// composition, tool recommendation, decision records, diagrams, cost,
// dependency risk, document assembly and quality validation, in that
// order. Each run constructs fresh stage values and returns a single
// PlanPackage aggregate.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/josephgoksu/PlanWing/internal/adr"
	"github.com/josephgoksu/PlanWing/internal/assemble"
	"github.com/josephgoksu/PlanWing/internal/cost"
	"github.com/josephgoksu/PlanWing/internal/diagram"
	"github.com/josephgoksu/PlanWing/internal/llm"
	"github.com/josephgoksu/PlanWing/internal/quality"
	"github.com/josephgoksu/PlanWing/internal/research"
	"github.com/josephgoksu/PlanWing/internal/risk"
	"github.com/josephgoksu/PlanWing/internal/team"
	"github.com/josephgoksu/PlanWing/internal/toolrec"
	"github.com/josephgoksu/PlanWing/types"
)

// Input carries everything one run consumes. Summary is required;
// Enrichment and Clarifications are optional intake data.
type Input struct {
	Summary        types.ProjectSummary
	Enrichment     *types.InputEnrichment
	Clarifications []types.ClarificationQA
}

// Pipeline runs the planning stages. Construct one per configuration;
// a Pipeline is safe for concurrent Run calls because each run builds
// its own stage values.
type Pipeline struct {
	cfg    llm.Config
	logger *slog.Logger
}

// New builds a pipeline around the given model configuration.
func New(cfg llm.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes all stages in dependency order. A research failure
// aborts the run; every other stage either cannot fail or falls back
// internally.
func (p *Pipeline) Run(ctx context.Context, in Input) (*types.PlanPackage, error) {
	pkg := &types.PlanPackage{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Summary:        in.Summary,
		Enrichment:     in.Enrichment,
		Clarifications: in.Clarifications,
	}
	logger := p.logger.With("runId", pkg.RunID, "project", in.Summary.ProjectName)
	logger.Info("planning run started")

	researcher := research.New(p.cfg)
	logger.Info("research mode selected", "mode", researcher.Mode())

	err := p.timed(pkg, logger, research.StageName, func() error {
		result, err := researcher.Analyze(ctx, in.Summary, in.Enrichment)
		if err != nil {
			return err
		}
		pkg.Research = result
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("planning run %s aborted: %w", pkg.RunID, err)
	}

	p.timed(pkg, logger, "team", func() error {
		pkg.Team = team.Compose(in.Summary, pkg.Research)
		return nil
	})
	p.timed(pkg, logger, "toolrec", func() error {
		pkg.Tools = toolrec.Recommend(in.Summary, pkg.Research)
		return nil
	})

	p.timed(pkg, logger, adr.StageName, func() error {
		adrs, err := adr.New(p.cfg).Generate(ctx, in.Summary, pkg.Research, in.Enrichment, in.Clarifications)
		if err != nil {
			return err
		}
		pkg.ADRs = adrs
		return nil
	})
	if len(pkg.ADRs) == 0 {
		// Only reachable when fallback is disabled and the remote call
		// failed; the run continues with an empty decision set.
		logger.Warn("no decision records produced")
	}

	p.timed(pkg, logger, "diagram", func() error {
		pkg.Diagrams = types.DiagramSet{
			SystemContext:      diagram.SystemContext(in.Summary, pkg.Research),
			Container:          diagram.Container(in.Summary, pkg.Research),
			EntityRelationship: diagram.EntityRelationship(in.Summary, pkg.Research),
			Sequences:          diagram.SequenceFlows(in.Summary, pkg.Research),
		}
		return nil
	})
	p.timed(pkg, logger, "cost", func() error {
		pkg.Costs = cost.Estimate(in.Summary, pkg.Research, pkg.Team, in.Enrichment)
		return nil
	})
	p.timed(pkg, logger, "risk", func() error {
		pkg.Risks = risk.Analyze(pkg.Tools)
		return nil
	})

	err = p.timed(pkg, logger, "assemble", func() error {
		doc, err := assemble.Render(pkg)
		if err != nil {
			return err
		}
		decisions, err := assemble.RenderDecisions(pkg)
		if err != nil {
			return err
		}
		pkg.Document = doc
		pkg.Decisions = decisions
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("planning run %s aborted: %w", pkg.RunID, err)
	}

	p.timed(pkg, logger, "quality", func() error {
		pkg.Quality = quality.Validate(pkg.Document, pkg.Decisions)
		return nil
	})

	logger.Info("planning run finished",
		"score", pkg.Quality.OverallScore,
		"passed", pkg.Quality.PassedQualityGate,
		"stages", len(pkg.Timings))
	return pkg, nil
}

// timed runs one stage, records its duration and logs the outcome.
func (p *Pipeline) timed(pkg *types.PlanPackage, logger *slog.Logger, stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	pkg.Timings = append(pkg.Timings, types.StageTiming{Stage: stage, Duration: elapsed})
	if err != nil {
		logger.Error("stage failed", "stage", stage, "duration", elapsed, "error", err)
		return err
	}
	logger.Info("stage complete", "stage", stage, "duration", elapsed)
	return nil
}
