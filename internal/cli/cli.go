// Package cli turns command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/allpairs/internal/app"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the validated Config,
// a boolean telling the caller to exit cleanly (help, no input), or an
// ExitError. Flags given explicitly override values from -config.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("allpairs", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
allpairs - all-pairs shortest paths for small directed weighted graphs.

Usage:
  allpairs [options] [INPUT]

Arguments:
  INPUT
    Graph description file: text format, or YAML when named *.yaml/*.yml.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML config file.")
	inputFlag := flagSet.String("input", "", "Path to the graph description file.")
	formatFlag := flagSet.String("format", "", "Input format: 'text' or 'yaml'. Guessed from the extension when empty.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	legacyFlag := flagSet.Bool("legacy-scan", false, "Never select the last vertex as an intermediate hop (historical behavior).")
	maxFlag := flagSet.Int("max-vertices", 0, "Maximum vertices per graph (0 = default).")
	skipFlag := flagSet.Bool("skip-table", false, "Do not print the all-pairs table.")
	var queries []app.Query
	flagSet.Func("path", "Print one path, as 'SOURCE:DESTINATION'. Repeatable.", func(s string) error {
		q, err := parseQuery(s)
		if err != nil {
			return err
		}
		queries = append(queries, q)
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var cfg app.Config
	if *configFlag != "" {
		fileCfg, err := app.LoadConfigFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = fileCfg
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *inputFlag != "" {
		cfg.InputPath = *inputFlag
	} else if flagSet.NArg() > 0 {
		cfg.InputPath = flagSet.Arg(0)
	}
	if cfg.InputPath == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if set["format"] {
		cfg.Format = strings.ToLower(*formatFlag)
	}
	if set["log-format"] || cfg.LogFormat == "" {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if set["log-level"] || cfg.LogLevel == "" {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if set["legacy-scan"] {
		cfg.LegacyScan = *legacyFlag
	}
	if set["max-vertices"] {
		cfg.MaxVertices = *maxFlag
	}
	if set["skip-table"] {
		cfg.SkipTable = *skipFlag
	}
	cfg.Queries = append(cfg.Queries, queries...)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// parseQuery parses "S:D" into a Query.
func parseQuery(s string) (app.Query, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return app.Query{}, fmt.Errorf("path %q: want SOURCE:DESTINATION", s)
	}
	f, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return app.Query{}, fmt.Errorf("path %q: %w", s, err)
	}
	t, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return app.Query{}, fmt.Errorf("path %q: %w", s, err)
	}

	return app.Query{From: f, To: t}, nil
}
