package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/internal/runner"
)

var (
	runCode       string
	runShowPython bool
	runArgs       []string
)

var runCmd = &cobra.Command{
	Use:   "run [FILE]",
	Short: "Transpile a Tenglish program and execute it",
	Long: `Transpiles a Tenglish program to Python and executes it in the
embedded interpreter.

Examples:
  brahmic run examples/factorial.teng
  brahmic run -c '("Namaste")cheppu'
  brahmic run script.teng --args one --args two`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runCode, "code", "c", "", "Tenglish code to run instead of a file")
	runCmd.Flags().BoolVar(&runShowPython, "show-python", false, "print the generated Python before running")
	runCmd.Flags().StringArrayVar(&runArgs, "args", nil, "arguments forwarded to the program as sys.argv")
}

func runRun(cmd *cobra.Command, args []string) error {
	t, err := newTranspiler()
	if err != nil {
		return err
	}

	source, name, err := resolveSource(t, args, runCode)
	if err != nil {
		return err
	}

	python, err := t.Transpile(source)
	if err != nil {
		return err
	}

	if runShowPython {
		fmt.Println("# --- generated Python ---")
		fmt.Println(python)
		fmt.Println("# ------------------------")
	}

	argv := append([]string{name}, runArgs...)
	_, err = runner.New(corelog.GetDefault()).Run(python, runner.Options{
		Desc: name,
		Args: argv,
	})
	return err
}
