// Command server runs the Turkish part-of-speech tagger (built as turkce).
//
//	turkce serve [--addr :8000]        HTTP API: POST /tag {"sentence":"..."}
//	turkce tag "Okula gidiyorum"       tag from the terminal
//	turkce mcp serve                   MCP tools over stdio
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelime-lab/turkce/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
