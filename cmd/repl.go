package cmd

import (
	"github.com/bmatsuo/minilisp/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt      string
	replHistoryFile string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  Each expression is evaluated and its
value printed once it has been completely entered.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, err := lispConfigs()
		if err != nil {
			return err
		}
		return repl.RunRepl(replPrompt,
			repl.WithHistoryFile(replHistoryFile),
			repl.WithLisp(configs...))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	// The root command starts a repl too so it shares these flags.
	for _, cmd := range []*cobra.Command{rootCmd, replCmd} {
		cmd.Flags().StringVar(&replPrompt, "prompt", "> ",
			"Prompt displayed when reading input")
		cmd.Flags().StringVar(&replHistoryFile, "history-file", "",
			"Persist input history to a file")
	}
}
