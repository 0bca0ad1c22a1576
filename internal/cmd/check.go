package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsline/switchboard/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check <snapshot.yaml>",
	Short: "Validate a pipeline snapshot file",
	Long: `Check reads a snapshot file, validates it against the pipeline schema,
and prints a summary of the run it describes without starting the
dashboard. It exits non-zero when the file is missing or invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	state, err := pipeline.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "snapshot: %s\n", args[0])

	scenario := state.Scenario
	if scenario == "" {
		scenario = "(none)"
	}
	fmt.Fprintf(out, "scenario: %s\n", scenario)

	if state.Contact != "" {
		fmt.Fprintf(out, "contact:  %s", state.Contact)
		if state.Channel != "" {
			fmt.Fprintf(out, " via %s", state.Channel)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "phase:    %s\n", state.Phase)

	statuses := pipeline.ResolveAll(state)
	for _, role := range pipeline.Roles() {
		line := fmt.Sprintf("  %-18s %s", role.Title(), statuses[role])
		if rec, ok := state.RecordFor(role); ok && rec.Decision != nil {
			line += fmt.Sprintf("  %s  %.0f%%  risk %s",
				rec.Decision.IntentLabel(),
				rec.Decision.Confidence*100,
				rec.Decision.Risk.Label())
		}
		fmt.Fprintln(out, line)
	}

	if state.CompletedCount() > 0 {
		score := state.OverallConfidence()
		fmt.Fprintf(out, "overall:  %.0f%% (%s)\n", score*100, pipeline.TierForScore(score))
	}

	fmt.Fprintln(out, "snapshot OK")
	return nil
}
