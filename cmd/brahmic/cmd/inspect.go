package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	"github.com/brahmic-lang/brahmic/internal/utils/stringx"
	"github.com/brahmic-lang/brahmic/pkg/teng/ast"
)

var (
	inspectCode   string
	inspectTokens bool
	inspectTree   bool
	inspectAll    bool
)

var (
	inspectHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8B5CF6")).
				Bold(true)

	inspectErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EF4444"))
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [FILE]",
	Short: "Dump tokens and the parse tree of a Tenglish program",
	Long: `Shows the transpiler front end at work: the token stream produced
by the lexer and the tree built by the parser.

Examples:
  brahmic inspect --tokens -c '("Hi")cheppu'
  brahmic inspect --tree examples/factorial.teng
  brahmic inspect --all examples/factorial.teng`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectCode, "code", "c", "", "Tenglish code to inspect instead of a file")
	inspectCmd.Flags().BoolVar(&inspectTokens, "tokens", false, "dump the token stream")
	inspectCmd.Flags().BoolVar(&inspectTree, "tree", false, "dump the parse tree")
	inspectCmd.Flags().BoolVar(&inspectAll, "all", false, "dump tokens, tree, and the generated Python")
}

func runInspect(cmd *cobra.Command, args []string) error {
	t, err := newTranspiler()
	if err != nil {
		return err
	}

	source, _, err := resolveSource(t, args, inspectCode)
	if err != nil {
		return err
	}

	showTokens := inspectTokens || inspectAll
	showTree := inspectTree || inspectAll
	if !showTokens && !showTree {
		showTokens = true
		showTree = true
	}

	if showTokens {
		tokens, lexErrs, err := t.DebugTokens(source)
		if err != nil && coreerror.GetCode(err) != coreerror.CodeTengLexical {
			return err
		}

		fmt.Println(inspectHeadingStyle.Render("Tokens"))
		for _, tok := range tokens {
			fmt.Printf("  %4d:%-3d  %-12s %q\n", tok.Line, tok.Column, tok.Type.String(), tok.Value)
		}
		for _, msg := range lexErrs {
			fmt.Println(inspectErrorStyle.Render("  " + msg))
		}
		fmt.Println()
	}

	program, err := t.DebugTree(source)
	if err != nil {
		return err
	}

	if showTree {
		tv := ast.NewTreeVisitor()
		program.Accept(tv)

		fmt.Println(inspectHeadingStyle.Render("Tree"))
		fmt.Print(indentLines(tv.String(), "  "))
		fmt.Println()
	}

	if inspectAll {
		fmt.Println(inspectHeadingStyle.Render("Python"))
		fmt.Println(indentLines(program.Render(0), "  "))
	}

	return nil
}

// indentLines prefixes every line of text with the given prefix
func indentLines(text, prefix string) string {
	var b strings.Builder
	for _, line := range stringx.SplitLines(strings.TrimRight(text, "\n")) {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
