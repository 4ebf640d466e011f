// Package cli implements the turkce command line: the HTTP service, the
// MCP server and one-shot tagging from the terminal.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kelime-lab/turkce"
	"github.com/kelime-lab/turkce/internal/config"
	"github.com/kelime-lab/turkce/internal/logger"
)

var (
	configPath string
	verbose    bool

	// cfg is loaded before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "turkce",
	Short: "Turkish part-of-speech tagger",
	Long: `Splits Turkish words into morphemes and tags each one.

Run "turkce serve" for the HTTP API or "turkce tag" to tag from the terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the command line with ctx as the command context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		c.Log.Verbose = true
	}
	logger.SetVerbose(c.Log.Verbose)
	cfg = c
	return nil
}

// loadMorphology builds the engine from the analysis settings: the
// embedded data unless a data directory is configured, plus the extra
// lexicons.
func loadMorphology(a config.Analysis) (*turkce.Morphology, error) {
	opts := make([]turkce.Option, 0, len(a.Lexicons))
	for _, path := range a.Lexicons {
		opts = append(opts, turkce.WithLexiconFile(path))
	}

	var (
		m   *turkce.Morphology
		err error
	)
	if a.DataDir != "" {
		logger.Debug("loading data from %s", a.DataDir)
		m, err = turkce.New(a.DataDir, opts...)
	} else {
		logger.Debug("loading embedded data")
		m, err = turkce.NewWithDefaults(opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("load morphology: %w", err)
	}
	logger.Debug("lexicon loaded: %d items", m.ItemCount())
	return m, nil
}
