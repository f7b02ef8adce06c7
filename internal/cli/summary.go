package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [files...]",
	Short: "Print top terms per transcript",
	Long: `Prints one block per transcript with the speaker key, total word count
and most frequent non-stopword terms. The output is meant to be pasted into
the concept planning prompt.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if _, err := analysisService.IngestDocuments(args); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	out, err := analysisService.Summary()
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
