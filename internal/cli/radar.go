package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"brandradar/internal/definitions"
	"brandradar/internal/domain"
)

var (
	radarDefs   string
	radarFormat string
)

var radarCmd = &cobra.Command{
	Use:   "radar [files...]",
	Short: "Compute radar dimensions from a definitions file",
	Long: `Counts every concept of the definitions file in every transcript and sums
the counts into the file's radar dimensions. Unknown concept names count as
zero. Output is json, yaml or text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRadar,
}

func init() {
	radarCmd.Flags().StringVarP(&radarDefs, "defs", "d", "", "concept/dimension definitions file (JSON or YAML)")
	radarCmd.Flags().StringVarP(&radarFormat, "format", "f", "", "output format: json, yaml or text (default from config)")
	rootCmd.AddCommand(radarCmd)
}

// radarReport is the machine-readable output of the radar command.
type radarReport struct {
	Speakers []domain.SpeakerInfo  `json:"speakers" yaml:"speakers"`
	Concepts []domain.ConceptCount `json:"concepts" yaml:"concepts"`
	Radar    []domain.RadarRow     `json:"radar" yaml:"radar"`
}

func runRadar(cmd *cobra.Command, args []string) error {
	defs, err := loadDefinitions(radarDefs)
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

	format := radarFormat
	if format == "" && appConfig != nil {
		format = appConfig.Output.Format
	}
	report := radarReport{Speakers: freq.Speakers, Concepts: freq.Concepts, Radar: rows}
	return writeReport(cmd.OutOrStdout(), format, report)
}

func loadDefinitions(path string) (domain.Definitions, error) {
	if path == "" && appConfig != nil {
		path = appConfig.Definitions
	}
	if path == "" {
		return domain.Definitions{}, errors.New("no definitions file: pass --defs or set definitions in config")
	}
	return definitions.Load(path)
}

func writeReport(w io.Writer, format string, report radarReport) error {
	switch strings.ToLower(format) {
	case "json", "":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		return enc.Close()
	case "text":
		_, err := fmt.Fprint(w, renderTable(report))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Right)
)

// renderTable prints one line per dimension with a column per speaker.
func renderTable(report radarReport) string {
	subjectWidth := len("Dimension")
	for _, r := range report.Radar {
		subjectWidth = max(subjectWidth, lipgloss.Width(r.Subject))
	}
	colWidth := 4
	for _, s := range report.Speakers {
		colWidth = max(colWidth, len(s.Key)+1)
	}

	var b strings.Builder
	header := lipgloss.NewStyle().Width(subjectWidth).Render("Dimension")
	for _, s := range report.Speakers {
		header += cellStyle.Width(colWidth).Render(string(s.Key))
	}
	b.WriteString(headerStyle.Render(header) + "\n")
	for _, r := range report.Radar {
		line := lipgloss.NewStyle().Width(subjectWidth).Render(r.Subject)
		for _, s := range report.Speakers {
			line += cellStyle.Width(colWidth).Render(fmt.Sprint(r.Values[s.Key]))
		}
		b.WriteString(line + "\n")
	}
	for _, s := range report.Speakers {
		fmt.Fprintf(&b, "%s = %s (%d words)\n", s.Key, s.Name, s.TotalWords)
	}
	return b.String()
}
