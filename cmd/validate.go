package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephgoksu/PlanWing/internal/quality"
)

var decisionsFlag string

var validateCmd = &cobra.Command{
	Use:   "validate <buildspec.md>",
	Short: "Score an existing build specification against the quality gate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := afero.ReadFile(fs, args[0])
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}

		var decisions []byte
		if decisionsFlag != "" {
			decisions, err = afero.ReadFile(fs, decisionsFlag)
			if err != nil {
				return fmt.Errorf("reading decisions: %w", err)
			}
		}

		report := quality.Validate(string(document), string(decisions))
		fmt.Fprintln(cmd.OutOrStdout(), renderQualitySummary(report))

		if !report.PassedQualityGate {
			return fmt.Errorf("quality gate failed with score %d", report.OverallScore)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&decisionsFlag, "decisions", "d", "", "path to the companion decisions file")
	rootCmd.AddCommand(validateCmd)
}
