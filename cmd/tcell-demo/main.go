package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"scrollindicator/internal/collector"
	"scrollindicator/internal/config"
	"scrollindicator/ui/cell"
)

func main() {
	configPath := flag.String("config", "scrollindicator.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Log != "" {
		f, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	demo, err := cell.NewDemo(lines(cfg), cfg.Indicator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableMouse()

	demo.Resize(screen.Size())
	for {
		screen.Clear()
		demo.Draw(screen)
		screen.Show()

		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		if demo.HandleEvent(ev) {
			return
		}
	}
}

// lines lists running processes, falling back to numbered filler when the
// collector is unavailable.
func lines(cfg config.Config) []string {
	sc, err := collector.NewSystemCollector(cfg.Collector)
	if err == nil {
		procs, err := sc.ListProcesses(context.Background())
		if err == nil && len(procs) > 0 {
			return collector.Rows(procs)
		}
		log.Printf("list processes: %v", err)
	}
	out := make([]string, 200)
	for i := range out {
		out[i] = fmt.Sprintf("%4d  the quick brown fox jumps over the lazy dog", i)
	}
	return out
}
