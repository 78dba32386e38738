package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatsuo/minilisp/lisp"
	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minilisp",
	Short: "A minimal lisp interpreter",
	Long: `A minimal lisp interpreter.  Without a subcommand minilisp starts an
interactive session.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return replCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// lispConfigs returns the interpreter configuration shared by subcommands.
func lispConfigs() ([]lisp.Config, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(logLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	return []lisp.Config{
		lisp.WithLogger(lisp.NewLogger(os.Stderr, level)),
	}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Minimum level of log messages (debug, info, warn, error)")
}
