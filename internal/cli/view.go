package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"brandradar/internal/tui"
)

var viewDefs string

var viewCmd = &cobra.Command{
	Use:   "view [files...]",
	Short: "Browse the radar interactively",
	Long: `Opens a terminal viewer with one bar group per radar dimension. Terms
typed into the prompt are counted across all transcripts on Enter.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewDefs, "defs", "d", "", "concept/dimension definitions file (JSON or YAML)")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	defs, err := loadDefinitions(viewDefs)
	if err != nil {
		return err
	}
	if _, err := analysisService.IngestDocuments(args); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	freq, rows, err := analysisService.Radar(defs)
	if err != nil {
		return err
	}
	m := tui.New(analysisService, freq.Speakers, rows)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())).Run()
	return err
}
