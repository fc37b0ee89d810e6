package adr

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

var validate = validator.New()

// adrResponse is the JSON shape the remote service must return.
type adrResponse struct {
	ADRs []remoteADR `json:"adrs" validate:"required,min=1,dive"`
}

type remoteADR struct {
	Title        string   `json:"title" validate:"required"`
	Status       string   `json:"status"`
	Context      string   `json:"context" validate:"required"`
	Decision     string   `json:"decision" validate:"required"`
	Consequences []string `json:"consequences" validate:"required,min=1"`
	Alternatives []struct {
		Name string   `json:"name" validate:"required"`
		Pros []string `json:"pros"`
		Cons []string `json:"cons"`
	} `json:"alternatives"`
}

func (g *Generator) generateRemote(ctx context.Context, summary types.ProjectSummary, research *types.ResearchResult, enrichment *types.InputEnrichment, clarifications []types.ClarificationQA) ([]types.ADR, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout())
	defer cancel()

	chatModel, err := llm.NewChatModel(ctx, g.cfg)
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrCallFailure, err)
	}

	userPrompt, err := buildADRPrompt(summary, research, enrichment, clarifications)
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrCallFailure, err)
	}

	start := time.Now()
	resp, err := chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(prompts.ADRSystemPrompt),
		schema.UserMessage(userPrompt),
	})
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrCallFailure, err)
	}
	logArgs := []any{"stage", StageName, "provider", g.cfg.Provider, "duration", time.Since(start)}
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		logArgs = append(logArgs,
			"promptTokens", resp.ResponseMeta.Usage.PromptTokens,
			"completionTokens", resp.ResponseMeta.Usage.CompletionTokens)
	}
	slog.Debug("remote ADR call completed", logArgs...)

	return parseADRResponse(resp.Content)
}

func buildADRPrompt(summary types.ProjectSummary, research *types.ResearchResult, enrichment *types.InputEnrichment, clarifications []types.ClarificationQA) (string, error) {
	var sb strings.Builder

	sb.WriteString("Project summary:\n")
	if err := writeJSON(&sb, summary); err != nil {
		return "", err
	}

	sb.WriteString("\n\nResearch result:\n")
	if err := writeJSON(&sb, research); err != nil {
		return "", err
	}

	if !enrichment.IsZero() {
		sb.WriteString("\n\nEnrichment:\n")
		if err := writeJSON(&sb, enrichment); err != nil {
			return "", err
		}
	}

	if answered := answeredClarifications(clarifications); len(answered) > 0 {
		sb.WriteString("\n\nClarification answers:\n")
		if err := writeJSON(&sb, answered); err != nil {
			return "", err
		}
	}

	sb.WriteString("\n\nGenerate the ADRs JSON now.")
	return sb.String(), nil
}

func answeredClarifications(clarifications []types.ClarificationQA) []types.ClarificationQA {
	var out []types.ClarificationQA
	for _, qa := range clarifications {
		if !qa.Skipped && strings.TrimSpace(qa.Answer) != "" {
			out = append(out, qa)
		}
	}
	return out
}

func writeJSON(sb *strings.Builder, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prompt input: %w", err)
	}
	sb.Write(raw)
	return nil
}

// parseADRResponse coerces raw model output into ADR values. IDs are
// assigned by the caller; truncation to MaxADRs happens there too.
func parseADRResponse(content string) ([]types.ADR, error) {
	parsed, err := jsonx.Extract[adrResponse](content)
	if err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrMalformedResponse, err)
	}
	if err := validate.Struct(&parsed); err != nil {
		return nil, types.NewRemoteReasoningError(StageName, types.RemoteErrMalformedResponse,
			fmt.Errorf("response failed schema validation: %w", err))
	}

	today := time.Now().Format(dateFormat)
	adrs := make([]types.ADR, 0, len(parsed.ADRs))
	for _, r := range parsed.ADRs {
		status := r.Status
		if status == "" {
			status = types.ADRStatusAccepted
		}
		adr := types.ADR{
			Title:        r.Title,
			Status:       status,
			Context:      r.Context,
			Decision:     r.Decision,
			Consequences: r.Consequences,
			DateCreated:  today,
		}
		for _, alt := range r.Alternatives {
			adr.Alternatives = append(adr.Alternatives, types.ADRAlternative{
				Name: alt.Name, Pros: alt.Pros, Cons: alt.Cons,
			})
		}
		adrs = append(adrs, adr)
	}
	return adrs, nil
}
