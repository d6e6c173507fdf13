package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
)

var (
	transpileCode   string
	transpileOutput string
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [FILE]",
	Short: "Transpile a Tenglish program to Python",
	Long: `Transpiles a Tenglish program and prints the resulting Python to
stdout, or writes it to a file with -o.

Examples:
  brahmic transpile examples/factorial.teng
  brahmic transpile examples/factorial.teng -o factorial.py
  brahmic transpile -c 'x = 10'`,
	RunE: runTranspile,
}

func init() {
	rootCmd.AddCommand(transpileCmd)

	transpileCmd.Flags().StringVarP(&transpileCode, "code", "c", "", "Tenglish code to transpile instead of a file")
	transpileCmd.Flags().StringVarP(&transpileOutput, "output", "o", "", "write the Python to this file instead of stdout")
}

func runTranspile(cmd *cobra.Command, args []string) error {
	t, err := newTranspiler()
	if err != nil {
		return err
	}

	source, _, err := resolveSource(t, args, transpileCode)
	if err != nil {
		return err
	}

	python, err := t.Transpile(source)
	if err != nil {
		return err
	}

	if transpileOutput == "" {
		fmt.Println(python)
		return nil
	}

	if err := os.WriteFile(transpileOutput, []byte(python+"\n"), 0644); err != nil {
		return coreerror.Wrap(err, "cannot write output file").
			WithCode(coreerror.CodeFileWrite).
			WithDetail("path", transpileOutput)
	}
	return nil
}
