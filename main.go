package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scrollindicator/internal/collector"
	"scrollindicator/internal/config"
	"scrollindicator/internal/output"
	"scrollindicator/ui/console"
	"scrollindicator/ui/tui"
)

func main() {
	configPath := flag.String("config", "scrollindicator.yaml", "path to the YAML config")
	probe := flag.String("probe", "", "print a report for content,visible,offset[,orthogonal] and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *probe != "" {
		if err := runProbe(cfg, *probe); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logPath := cfg.Log
	if logPath == "" {
		logPath = os.Getenv("SCROLLINDICATOR_DEBUG")
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "scrollindicator")
		if err != nil {
			fmt.Printf("Error opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Use the interface to allow for different collector implementations
	var provider collector.ProcessProvider
	if sc, err := collector.NewSystemCollector(cfg.Collector); err == nil {
		provider = sc
	} else {
		log.Printf("process collector disabled: %v", err)
	}

	if err := tui.Start(cfg, provider); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runProbe evaluates the indicator for the given sizes and prints a report.
func runProbe(cfg config.Config, arg string) error {
	fields := strings.Split(arg, ",")
	if len(fields) < 3 || len(fields) > 4 {
		return fmt.Errorf("probe wants content,visible,offset[,orthogonal], got %q", arg)
	}
	vals := []float64{0, 0, 0, 100}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return fmt.Errorf("probe value %q: %w", f, err)
		}
		vals[i] = v
	}

	snap, err := output.Run(output.Probe{
		Variant:        cfg.Variant(),
		Options:        cfg.Indicator,
		ContentSize:    vals[0],
		VisibleSize:    vals[1],
		Offset:         vals[2],
		OrthogonalSize: vals[3],
	})
	if err != nil {
		return err
	}
	console.Print(os.Stdout, output.BuildReport(snap))
	return nil
}
