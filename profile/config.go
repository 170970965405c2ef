package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	CPUProfile     string
	HeapProfile    string
	MemProfileRate string
}

// Config holds CLI flag values for profiling configuration. A zero-value
// Config has all profiles disabled.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler].
type Config struct {
	Flags Flags

	// Output paths (empty = disabled).
	CPUProfile  string
	HeapProfile string

	MemProfileRate int
}

// NewConfig returns a new [Config] with default flag names and all
// profiles disabled.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			CPUProfile:     "cpu-profile",
			HeapProfile:    "heap-profile",
			MemProfileRate: "mem-profile-rate",
		},
	}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "",
		"write a CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "",
		"write a heap profile to file")
	flags.IntVar(&c.MemProfileRate, c.Flags.MemProfileRate, 0,
		"memory profile rate in bytes per sample (0 = runtime default)")
}

// RegisterCompletions registers shell completions for profiling flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.MemProfileRate, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.MemProfileRate, err)
	}

	return nil
}

// NewProfiler creates a [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{Config: *c}
}
