package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/tcgsim/internal/logging"
	tcgmcp "github.com/peterkuimelis/tcgsim/internal/mcp"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to decks YAML file")
	verbose := flag.Bool("v", false, "debug logging on stderr")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tcgmcp.SetDecksFile(*decks)
	tcgmcp.SetLogger(logger)

	s := server.NewMCPServer("tcgsim", "1.0.0")
	tcgmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
