// Package main provides the CLI entry point for yam, a context-aware YAML
// to markdown converter.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/purpleclay/yam"
	"github.com/purpleclay/yam/log"
	"github.com/purpleclay/yam/markdown"
	"github.com/purpleclay/yam/profile"
	"github.com/purpleclay/yam/version"
)

func main() {
	cfg := yam.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	var prof *profile.Profiler

	rootCmd := &cobra.Command{
		Use:   "yam [flags] <file.yaml> [file2.yaml ...]",
		Short: "Convert YAML documents into markdown tables",
		Long: `yam is a context-aware YAML to markdown converter. It documents the
structure of configuration files such as Helm values.yaml as markdown
tables: keys, inferred types, default values, and descriptions recovered
from the comments that annotate each field.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			prof = profCfg.NewProfiler()

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if prof == nil {
				return nil
			}

			return prof.Stop()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, err := range []error{
		cfg.RegisterCompletions(rootCmd),
		logCfg.RegisterCompletions(rootCmd),
		profCfg.RegisterCompletions(rootCmd),
	} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run converts every input file and emits the combined markdown. Each
// document runs through an independent pipeline instance, so files are
// converted in parallel; a fatal error in one file is logged and the
// batch continues with the rest.
func run(cfg *yam.Config, args []string) error {
	conv, err := cfg.NewConverter()
	if err != nil {
		return err
	}

	outputs := make([]string, len(args))
	failures := make([]error, len(args))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			data, err := readInput(arg)
			if err != nil {
				failures[i] = err

				return nil
			}

			res, err := conv.Convert(data)
			if err != nil {
				failures[i] = fmt.Errorf("%s: %w", arg, err)

				return nil
			}

			for _, diag := range res.Diagnostics {
				slog.Warn(diag.Message,
					slog.String("file", arg),
					slog.Int("line", diag.Pos.Line),
					slog.Int("column", diag.Pos.Column),
				)
			}

			outputs[i] = res.Markdown

			return nil
		})
	}

	_ = g.Wait()

	failed := 0

	for _, ferr := range failures {
		if ferr != nil {
			failed++

			slog.Error("convert", slog.Any("error", ferr))
		}
	}

	err = emit(cfg, combine(outputs))
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}

	return nil
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", yam.ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", yam.ErrReadInput, err)
	}

	return data, nil
}

// combine joins per-file markdown in argument order, one blank line
// between documents.
func combine(outputs []string) string {
	var parts []string

	for _, out := range outputs {
		if out != "" {
			parts = append(parts, strings.TrimSuffix(out, "\n"))
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "\n\n") + "\n"
}

// emit writes the combined markdown to the configured destination: stdout,
// an output file, or injected between sentinel markers of an existing
// markdown file.
func emit(cfg *yam.Config, content string) error {
	if cfg.Inject != "" {
		target, err := os.ReadFile(cfg.Inject)
		if err != nil {
			return fmt.Errorf("%w: %w", yam.ErrReadInput, err)
		}

		updated, err := markdown.Inject(target, content, cfg.BeginMarker, cfg.EndMarker)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.Inject, err)
		}

		err = os.WriteFile(cfg.Inject, updated, 0o644)
		if err != nil {
			return fmt.Errorf("%w: %w", yam.ErrWriteOutput, err)
		}

		return nil
	}

	if cfg.Output == "" || cfg.Output == "-" {
		_, err := os.Stdout.WriteString(content)
		if err != nil {
			return fmt.Errorf("%w: %w", yam.ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(cfg.Output, []byte(content), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", yam.ErrWriteOutput, err)
	}

	return nil
}
