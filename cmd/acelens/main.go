package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hexwatch/acelens/internal/config"
	"github.com/hexwatch/acelens/internal/input"
	"github.com/hexwatch/acelens/internal/logging"
	"github.com/hexwatch/acelens/internal/output"
	"github.com/hexwatch/acelens/internal/output/csvexport"
	"github.com/hexwatch/acelens/internal/output/jsonexport"
	"github.com/hexwatch/acelens/internal/output/multi"
	"github.com/hexwatch/acelens/internal/output/report"
	"github.com/hexwatch/acelens/internal/pipeline"
)

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (YAML; env vars ACELENS_* also apply)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("acelens %s (%s)\n", version, commit)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(logging.ParseLevel(cfg.LogLevel))

	// A positional argument (including a file dragged onto the binary)
	// overrides the configured input path.
	if arg := flag.Arg(0); arg != "" {
		cfg.Input.Path = arg
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, explain(err, cfg.Input.Path))
		os.Exit(1)
	}

	if cfg.Pause {
		fmt.Println("\n>>> press Enter to exit <<<")
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
}

func run(cfg config.Config) error {
	sinks := []output.Sink{
		report.New(os.Stdout, report.Config{
			TopProcesses:  cfg.Report.TopProcesses,
			TopFiles:      cfg.Report.TopFiles,
			TopExtensions: cfg.Report.TopExtensions,
			TopHours:      cfg.Report.TopHours,
			NoColor:       cfg.Report.NoColor,
		}),
		csvexport.New(cfg.Export.CSVPath, cfg.Export.CSVLimit),
	}
	if cfg.Export.JSONPath != "" {
		sinks = append(sinks, jsonexport.New(cfg.Export.JSONPath))
	}

	p := pipeline.New(multi.New(sinks...))
	defer p.Close()

	if _, err := p.Run(context.Background(), cfg.Input.Path); err != nil {
		return err
	}

	slog.Info("export complete", "csv", cfg.Export.CSVPath)
	return nil
}

// explain maps the three user-visible failure classes to actionable
// messages; anything else passes through as-is.
func explain(err error, path string) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Sprintf("file not found: %s\nusage: %s <log file>, or drop a file onto the binary", path, os.Args[0])
	case errors.Is(err, input.ErrNotHuorongLog):
		return fmt.Sprintf("%s is not a Huorong security log: expected SGuard and 操作文件： markers", path)
	case errors.Is(err, pipeline.ErrNoEntries):
		return fmt.Sprintf("no valid ACE scan entries detected in %s", path)
	default:
		return err.Error()
	}
}
