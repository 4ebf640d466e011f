package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kelime-lab/turkce"
	"github.com/kelime-lab/turkce/internal/config"
	"github.com/kelime-lab/turkce/internal/logger"
	"github.com/kelime-lab/turkce/internal/server"
	"github.com/kelime-lab/turkce/internal/tagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP tagging service",
	Long: `Serves POST /tag until interrupted.

  curl -s localhost:8000/tag -d '{"sentence":"Okula gidiyorum"}'

Flags override the configuration file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "listen address (default \":8000\")")
	cmd.Flags().Int("workers", 0, "analysis workers (default one per CPU)")
	cmd.Flags().Duration("timeout", 0, "per request analysis timeout (default 10s)")
	cmd.Flags().String("data", "", "data directory replacing the embedded data")
}

// applyServeFlags copies the flags set on the command line into c.
func applyServeFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		c.Server.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("workers") {
		c.Analysis.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("timeout") {
		d, _ := flags.GetDuration("timeout")
		c.Analysis.Timeout = config.Duration(d)
	}
	if flags.Changed("data") {
		c.Analysis.DataDir, _ = flags.GetString("data")
	}
	return c.Validate()
}

// newService builds the engine and the pooled tagging service.
func newService(a config.Analysis) (*tagger.Service, *turkce.Morphology, error) {
	start := time.Now()
	m, err := loadMorphology(a)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("morphology loaded in %s", time.Since(start).Round(time.Millisecond))

	t := tagger.NewFromMorphology(m)
	pool := tagger.NewPool(a.Workers, a.QueueSize)
	return tagger.NewService(t, pool, a.Timeout.Std()), m, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	c := cfg
	if err := applyServeFlags(cmd, &c); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	svc, _, err := newService(c.Analysis)
	if err != nil {
		return err
	}
	defer svc.Close()

	return server.New(svc, c).Run(cmd.Context())
}
