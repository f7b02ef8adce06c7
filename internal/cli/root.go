// Package cli implements the brandradar command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"brandradar/internal/config"
	"brandradar/internal/logger"
	"brandradar/internal/service"
	"brandradar/internal/summarizer"
)

var (
	configPath string
	verbose    bool

	appConfig       *config.AppConfig
	log             *slog.Logger
	analysisService *service.AnalysisServiceImpl
)

var rootCmd = &cobra.Command{
	Use:   "brandradar",
	Short: "Word-frequency radar for stakeholder interview transcripts",
	Long: `brandradar counts concepts across interview transcripts and folds the
counts into radar dimensions. The summary command prints the top terms per
speaker for the concept planning step; radar and view apply the resulting
definitions file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (default ./brandradar.yaml or ~/.config/brandradar/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and assembles the service unless a test has
// already injected one.
func setup(cmd *cobra.Command, _ []string) error {
	if analysisService != nil {
		return nil
	}
	if configPath == "" {
		configPath = os.Getenv("BRANDRADAR_CONFIG")
	}

	var err error
	if configPath == "" {
		appConfig, _, err = config.LoadDefault()
	} else {
		appConfig, err = config.Load(configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log = logger.New(cmd.ErrOrStderr(), verbose || logger.VerboseFromEnv())

	var opts []summarizer.Option
	if appConfig.Summary.MaxSentences > 0 {
		opts = append(opts, summarizer.WithExcerpts(summarizer.NewExcerptSummarizer(), appConfig.Summary.MaxSentences))
	}
	sum := summarizer.New(appConfig.Summary.TopWords, opts...)
	analysisService = service.NewAnalysisService(sum, appConfig.Ingest.Extensions, log)
	log.Debug("configured", "top_words", appConfig.Summary.TopWords, "extensions", appConfig.Ingest.Extensions)
	return nil
}
