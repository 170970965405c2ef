package yam

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for converter configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Output           string
	MaxSequenceItems string
	DocumentedTables string
	Title            string
	Inject           string
	BeginMarker      string
	EndMarker        string
}

// Config holds CLI flag values for converter configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewConverter] to create a
// [Converter].
type Config struct {
	Flags            Flags
	Output           string
	Title            string
	Inject           string
	BeginMarker      string
	EndMarker        string
	MaxSequenceItems int
	DocumentedTables bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Output:           "output",
		MaxSequenceItems: "max-seq-items",
		DocumentedTables: "documented-tables",
		Title:            "title",
		Inject:           "inject",
		BeginMarker:      "begin-marker",
		EndMarker:        "end-marker",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds converter flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.IntVar(&c.MaxSequenceItems, c.Flags.MaxSequenceItems, 5,
		"maximum sequence elements rendered inline before truncation")
	flags.BoolVar(&c.DocumentedTables, c.Flags.DocumentedTables, false,
		"spawn a linked sub-table for each documented nested mapping")
	flags.StringVar(&c.Title, c.Flags.Title, "",
		"top-level heading above the generated tables")
	flags.StringVar(&c.Inject, c.Flags.Inject, "",
		"markdown file to update between sentinel markers instead of writing output")
	flags.StringVar(&c.BeginMarker, c.Flags.BeginMarker, "",
		"overrides the begin sentinel marker used with --inject")
	flags.StringVar(&c.EndMarker, c.Flags.EndMarker, "",
		"overrides the end sentinel marker used with --inject")
}

// RegisterCompletions registers shell completions for converter flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{
		c.Flags.MaxSequenceItems, c.Flags.Title, c.Flags.BeginMarker, c.Flags.EndMarker,
	} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewConverter creates a [Converter] using this [Config].
func (c *Config) NewConverter() (*Converter, error) {
	if c.MaxSequenceItems < 1 {
		return nil, fmt.Errorf("%w: %s must be at least 1", ErrInvalidOption, c.Flags.MaxSequenceItems)
	}

	opts := []Option{
		WithMaxSequenceItems(c.MaxSequenceItems),
		WithDocumentedTables(c.DocumentedTables),
	}

	if c.Title != "" {
		opts = append(opts, WithTitle(c.Title))
	}

	return NewConverter(opts...), nil
}
