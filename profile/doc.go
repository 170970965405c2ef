// Package profile adds runtime profiling to the yam CLI, useful when
// measuring conversion throughput over large values files.
//
// Typical usage creates a [Config], registers flags, then wraps command
// execution with the [Profiler] lifecycle:
//
//	cfg := profile.NewConfig()
//	p := cfg.NewProfiler()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Stop()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
// Profiling is then enabled with flags like --cpu-profile=cpu.prof.
package profile
