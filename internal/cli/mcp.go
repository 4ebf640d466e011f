package cli

import (
	"github.com/spf13/cobra"

	"github.com/kelime-lab/turkce/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over stdio.

Tools:
  tag_sentence   tag the morphemes of a Turkish sentence
  list_tags      list the morpheme tags

Client configuration:
  {
    "mcpServers": {
      "turkce": {
        "command": "/path/to/turkce",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	svc, m, err := newService(cfg.Analysis)
	if err != nil {
		return err
	}
	defer svc.Close()

	server, err := mcp.NewServer(&mcp.Ports{Tagger: svc, Tags: m})
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}
