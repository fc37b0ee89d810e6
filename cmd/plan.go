package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/josephgoksu/PlanWing/internal/config"
	"github.com/josephgoksu/PlanWing/internal/pipeline"
	"github.com/josephgoksu/PlanWing/types"
)

// fs is swappable for tests.
var fs = afero.NewOsFs()

var (
	summaryPath        string
	enrichmentPath     string
	clarificationsPath string
	outputDir          string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the planning pipeline and write the build specification",
	Long: `Plan reads a project summary (plus optional enrichment and
clarification files) in YAML, runs every pipeline stage and writes
buildspec.md and decisions.md into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadPlanInput()
		if err != nil {
			return err
		}

		llmCfg, err := config.LoadLLMConfig()
		if err != nil {
			return err
		}

		p := pipeline.New(llmCfg, slog.Default())
		pkg, err := p.Run(cmd.Context(), in)
		if err != nil {
			return err
		}

		if outputDir == "" {
			outputDir = viper.GetString("output.directory")
		}
		if err := fs.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		specPath := filepath.Join(outputDir, "buildspec.md")
		decisionsPath := filepath.Join(outputDir, "decisions.md")
		if err := afero.WriteFile(fs, specPath, []byte(pkg.Document), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", specPath, err)
		}
		if err := afero.WriteFile(fs, decisionsPath, []byte(pkg.Decisions), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", decisionsPath, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderRunSummary(pkg, specPath, decisionsPath))
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&summaryPath, "summary", "s", "", "path to the project summary YAML (required)")
	planCmd.Flags().StringVarP(&enrichmentPath, "enrichment", "e", "", "path to an optional enrichment YAML")
	planCmd.Flags().StringVar(&clarificationsPath, "clarifications", "", "path to an optional clarifications YAML")
	planCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config, else current directory)")
	_ = planCmd.MarkFlagRequired("summary")
	rootCmd.AddCommand(planCmd)
}

func loadPlanInput() (pipeline.Input, error) {
	var in pipeline.Input

	if err := decodeYAMLFile(summaryPath, &in.Summary); err != nil {
		return in, fmt.Errorf("loading summary: %w", err)
	}
	if strings.TrimSpace(in.Summary.ProjectName) == "" {
		return in, fmt.Errorf("summary %s: projectName is required", summaryPath)
	}
	if strings.TrimSpace(in.Summary.Description) == "" {
		return in, fmt.Errorf("summary %s: description is required", summaryPath)
	}

	if enrichmentPath != "" {
		in.Enrichment = &types.InputEnrichment{}
		if err := decodeYAMLFile(enrichmentPath, in.Enrichment); err != nil {
			return in, fmt.Errorf("loading enrichment: %w", err)
		}
	}
	if clarificationsPath != "" {
		if err := decodeYAMLFile(clarificationsPath, &in.Clarifications); err != nil {
			return in, fmt.Errorf("loading clarifications: %w", err)
		}
	}
	return in, nil
}

func decodeYAMLFile(path string, out any) error {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
