package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bmatsuo/minilisp/lisp"
	"github.com/bmatsuo/minilisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configs, err := lispConfigs()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		configs = append(configs,
			lisp.WithReader(parser.NewReader()),
			lisp.WithPrint(runPrint))
		in, err := lisp.New(configs...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, src := range sources {
			err := in.LoadBytes(src.name, src.text)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

type runSource struct {
	name string
	text []byte
}

func runReadSources(args []string) ([]runSource, error) {
	sources := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSource{fmt.Sprintf("expression %d", i+1), []byte(args[i])}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSource{path, b}
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
