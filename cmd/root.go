// Package cmd implements the CLI command structure for taskproc.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rekhak/taskproc/internal/config"
	"github.com/rekhak/taskproc/internal/logging"
	"github.com/rekhak/taskproc/internal/pipeline"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskproc CLI. Cancellation is not supported mid-run; the
// context exists so the entrypoint can report interrupts distinctly.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskproc", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("no command given")
	}
	subcommand := remaining[0]
	remaining = remaining[1:]

	switch subcommand {
	case "process":
		return processCommand(cfg, remaining)
	case "validate":
		return validateCommand(cfg, remaining)
	case "init":
		return initCommand(remaining)
	case "version", "--version":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// processCommand validates, enriches, and rewrites a JSON input file.
func processCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskproc process", flag.ContinueOnError)
	input := fs.String("input", "", "Path to input JSON file (required)")
	output := fs.String("output", "", "Path to output JSON file (required)")
	schema := fs.String("schema", cfg.SchemaFile, "Optional JSON Schema applied before the built-in checks")
	verbose := fs.Bool("verbose", false, "Enable verbose (debug) logging")
	fs.BoolVar(verbose, "v", false, "Enable verbose (debug) logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("-input is required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("-output is required")
	}

	if *verbose {
		cfg.LogLevel = "debug"
	}
	logger := logging.New(cfg)

	p := pipeline.New(logger, *schema)
	if err := p.Run(*input, *output); err != nil {
		logger.Error(err.Error())
		return fmt.Errorf("processing failed")
	}
	return nil
}

// validateCommand checks a JSON input file without writing any output.
func validateCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskproc validate", flag.ContinueOnError)
	input := fs.String("input", "", "Path to input JSON file (required)")
	schema := fs.String("schema", cfg.SchemaFile, "Optional JSON Schema applied before the built-in checks")
	verbose := fs.Bool("verbose", false, "Enable verbose (debug) logging")
	fs.BoolVar(verbose, "v", false, "Enable verbose (debug) logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("-input is required")
	}

	if *verbose {
		cfg.LogLevel = "debug"
	}
	logger := logging.New(cfg)

	p := pipeline.New(logger, *schema)
	count, err := p.Validate(*input)
	if err != nil {
		logger.Error(err.Error())
		return fmt.Errorf("validation failed")
	}
	logger.Info("input is valid", "records", count)
	return nil
}

// initCommand writes an example config file into the working directory.
func initCommand(args []string) error {
	fs := flag.NewFlagSet("taskproc init", flag.ContinueOnError)
	force := fs.Bool("force", false, "Overwrite an existing config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	const path = "taskproc.toml"
	if !*force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("%s already exists (use -force to overwrite)\n", path)
			return nil
		}
	}
	if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func versionCommand() error {
	fmt.Printf("taskproc %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskproc - Validate and process JSON task files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskproc <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  process       Validate, enrich, and rewrite a JSON input file")
	fmt.Fprintln(w, "  validate      Check a JSON input file without writing output")
	fmt.Fprintln(w, "  init          Write an example taskproc.toml config file")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Process Options (use with 'process'):")
	fmt.Fprintln(w, "  -input string")
	fmt.Fprintln(w, "        Path to input JSON file (required)")
	fmt.Fprintln(w, "  -output string")
	fmt.Fprintln(w, "        Path to output JSON file (required)")
	fmt.Fprintln(w, "  -schema string")
	fmt.Fprintln(w, "        Optional JSON Schema applied before the built-in checks")
	fmt.Fprintln(w, "  -verbose")
	fmt.Fprintln(w, "        Enable verbose (debug) logging")
}
