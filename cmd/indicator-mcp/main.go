package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"scrollindicator/internal/config"
	"scrollindicator/internal/mcpserver"
)

func main() {
	configPath := flag.String("config", "scrollindicator.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	server, err := mcpserver.NewServer(mcpserver.Config{
		ServerName:    "scrollindicator",
		ServerVersion: "1.0.0",
		Variant:       cfg.Variant(),
		Options:       cfg.Indicator,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
