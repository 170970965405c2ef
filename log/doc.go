// Package log provides structured logging handler construction for use
// with [log/slog].
//
// It supports text and JSON output formats and the usual severity levels.
// Use [NewHandler] to create a handler directly, or [Config] for CLI flag
// integration via [github.com/spf13/pflag] with shell completion support
// via [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	_ = cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
