package research

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/go-playground/validator/v10"
	"github.com/josephgoksu/PlanWing/internal/jsonx"
	"github.com/josephgoksu/PlanWing/internal/llm"
	"github.com/josephgoksu/PlanWing/prompts"
	"github.com/josephgoksu/PlanWing/types"
)

// requiredResponseKeys are the contractually required top-level keys of a
// remote research response. A missing key is a hard error; this stage has
// no runtime fallback.
var requiredResponseKeys = []string{
	"requiredFeatures",
	"recommendedTechStack",
	"architecture",
	"estimatedComplexity",
	"estimatedTimeline",
}

var validate = validator.New()

func init() {
	_ = validate.RegisterValidation("nonempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// researchResponse is the JSON shape the remote service must return.
type researchResponse struct {
	RequiredFeatures []struct {
		Name           string  `json:"name" validate:"required,nonempty"`
		Priority       string  `json:"priority" validate:"required,oneof=critical high medium low"`
		Complexity     string  `json:"complexity" validate:"required,oneof=low medium high"`
		EstimatedHours float64 `json:"estimatedHours" validate:"gt=0"`
	} `json:"requiredFeatures" validate:"dive"`
	RecommendedTechStack struct {
		Backend  *remoteStackChoice `json:"backend"`
		Frontend *remoteStackChoice `json:"frontend"`
		Database *remoteStackChoice `json:"database"`
	} `json:"recommendedTechStack"`
	Architecture struct {
		Pattern   string `json:"pattern" validate:"required,nonempty"`
		Reasoning string `json:"reasoning"`
	} `json:"architecture"`
	EstimatedComplexity string `json:"estimatedComplexity" validate:"required,oneof=low medium high"`
	EstimatedTimeline   string `json:"estimatedTimeline" validate:"required,nonempty"`
}

type remoteStackChoice struct {
	Framework string `json:"framework" validate:"required,nonempty"`
	Reasoning string `json:"reasoning"`
}

// remoteResearcher calls the configured reasoning service. Mode selection
// happened at construction; any failure here aborts the stage.
type remoteResearcher struct {
	cfg llm.Config
}

func newRemoteResearcher(cfg llm.Config) *remoteResearcher {
	return &remoteResearcher{cfg: cfg}
}

func (r *remoteResearcher) Mode() Mode { return ModeRemote }

func (r *remoteResearcher) Analyze(ctx context.Context, summary types.ProjectSummary, enrichment *types.InputEnrichment) (*types.ResearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout())
	defer cancel()

	chatModel, err := llm.NewChatModel(ctx, r.cfg)
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrCallFailure, err)
	}

	userPrompt, err := buildResearchPrompt(summary, enrichment)
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrCallFailure, err)
	}

	start := time.Now()
	resp, err := chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(prompts.ResearchSystemPrompt),
		schema.UserMessage(userPrompt),
	})
	if err != nil {
		slog.Error("remote research call failed", "stage", StageName, "provider", r.cfg.Provider, "error", err)
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrCallFailure, err)
	}
	logArgs := []any{"stage", StageName, "provider", r.cfg.Provider, "duration", time.Since(start)}
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		logArgs = append(logArgs,
			"promptTokens", resp.ResponseMeta.Usage.PromptTokens,
			"completionTokens", resp.ResponseMeta.Usage.CompletionTokens)
	}
	slog.Debug("remote research call completed", logArgs...)

	return parseResearchResponse(resp.Content)
}

// buildResearchPrompt embeds the full project summary (and enrichment when
// present) as JSON in the user message.
func buildResearchPrompt(summary types.ProjectSummary, enrichment *types.InputEnrichment) (string, error) {
	var sb strings.Builder
	sb.WriteString("Analyze this project summary and return the research result JSON:\n---\n")

	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal project summary: %w", err)
	}
	sb.Write(raw)

	if !enrichment.IsZero() {
		sb.WriteString("\n---\nEnrichment (non-functional requirements and preferences):\n")
		enriched, err := json.MarshalIndent(enrichment, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal enrichment: %w", err)
		}
		sb.Write(enriched)
	}

	sb.WriteString("\n---")
	return sb.String(), nil
}

// parseResearchResponse coerces the raw model output into a ResearchResult,
// enforcing presence of every required top-level key.
func parseResearchResponse(content string) (*types.ResearchResult, error) {
	raw, err := jsonx.Extract[map[string]json.RawMessage](content)
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrMalformedResponse, err)
	}

	for _, key := range requiredResponseKeys {
		if _, ok := raw[key]; !ok {
			return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrMissingField,
				fmt.Errorf("response missing required key %q", key))
		}
	}

	parsed, err := jsonx.Extract[researchResponse](content)
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrMalformedResponse, err)
	}
	if err := validate.Struct(&parsed); err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrMalformedResponse,
			fmt.Errorf("response failed schema validation: %w", err))
	}

	result := &types.ResearchResult{
		RecommendedTechStack: types.TechStackRecommendation{
			Backend:  toStackChoice(parsed.RecommendedTechStack.Backend),
			Frontend: toStackChoice(parsed.RecommendedTechStack.Frontend),
			Database: toStackChoice(parsed.RecommendedTechStack.Database),
		},
		Architecture: types.ArchitectureChoice{
			Pattern:   parsed.Architecture.Pattern,
			Reasoning: parsed.Architecture.Reasoning,
		},
		EstimatedComplexity: types.Complexity(parsed.EstimatedComplexity),
		EstimatedTimeline:   parsed.EstimatedTimeline,
	}
	for _, f := range parsed.RequiredFeatures {
		result.RequiredFeatures = append(result.RequiredFeatures, types.Feature{
			Name:           f.Name,
			Priority:       types.Priority(f.Priority),
			Complexity:     types.Complexity(f.Complexity),
			EstimatedHours: f.EstimatedHours,
		})
	}
	return result, nil
}

func toStackChoice(c *remoteStackChoice) *types.StackChoice {
	if c == nil {
		return nil
	}
	return &types.StackChoice{Framework: c.Framework, Reasoning: c.Reasoning}
}
