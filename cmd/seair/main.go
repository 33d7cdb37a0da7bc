package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/ritzau/sea-ir/pkg/config"
	"github.com/ritzau/sea-ir/pkg/cycles"
	"github.com/ritzau/sea-ir/pkg/flow"
	"github.com/ritzau/sea-ir/pkg/fragments"
	"github.com/ritzau/sea-ir/pkg/logging"
	"github.com/ritzau/sea-ir/pkg/output"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("seair", pflag.ExitOnError)
	config.RegisterFlags(flags)
	list := flags.Bool("list", false, "List the available fragments and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seair [flags] [fragment...]\n\n")
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(cfg.Verbosity, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if cfg.JSONLogs {
		logging.SetJSONOutput(level)
	} else {
		logging.SetLevel(level)
	}
	if !cfg.Color {
		color.NoColor = true
	}

	if *list {
		for _, f := range fragments.All() {
			fmt.Printf("%-20s %s\n", f.Name, f.Description)
		}
		return
	}

	names := append(cfg.Fragments, flags.Args()...)
	selected, err := fragments.Select(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx := logging.WithRunID(context.Background(), logging.NewRunID())
	logging.InfoContext(ctx, "verifying fragments", "count", len(selected))

	results := make([]output.Result, 0, len(selected))
	for _, f := range selected {
		results = append(results, verifyFragment(ctx, f, cfg, os.Stdout))
	}

	output.PrintReport(os.Stdout, results)

	for _, r := range results {
		if !r.AsExpected() {
			os.Exit(1)
		}
	}
}

func verifyFragment(ctx context.Context, f fragments.Fragment, cfg *config.Config, w io.Writer) output.Result {
	start := time.Now()
	result := output.Result{
		Name:        f.Name,
		Description: f.Description,
		Expected:    f.Verifies,
	}

	g, err := f.Build()
	if err != nil {
		logging.ErrorContext(ctx, "failed to build fragment", "fragment", f.Name, "error", err)
		result.Err = err
		return result
	}

	result.Verified = g.Verify()
	result.Issues = g.Check()

	if cfg.Loops {
		control := flow.BuildControlFlow(g)
		result.Loops = cycles.FindLoops(control)
		result.Unreachable = control.Unreachable()
		result.DataCycles = cycles.FindLoops(flow.BuildDataFlow(g))
	}

	if cfg.Listing {
		fmt.Fprintf(w, "%s:\n", f.Name)
		output.PrintGraph(w, g)
		fmt.Fprintln(w)
	}

	logging.DebugContext(ctx, "verified fragment",
		"fragment", f.Name,
		"verified", result.Verified,
		"issues", len(result.Issues),
		"durationMs", time.Since(start).Milliseconds())

	return result
}
