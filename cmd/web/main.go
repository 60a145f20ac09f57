package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/peterkuimelis/tcgsim/internal/logging"
	"github.com/peterkuimelis/tcgsim/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	decksFile := flag.String("decks", "decks.yaml", "path to decks YAML file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv := web.NewServer(*decksFile, logger)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("tcgsim web API listening", zap.String("url", fmt.Sprintf("http://localhost:%d", *port)))
	if err := srv.ListenAndServe(addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
