package cmd

import (
	"github.com/spf13/cobra"

	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/internal/history"
	"github.com/brahmic-lang/brahmic/internal/repl"
)

var replNoHistory bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Tenglish shell",
	Long: `Starts an interactive read-eval-print loop. Inputs are transpiled
to Python and evaluated in a persistent interpreter session, so
definitions carry over between inputs.

Key bindings:
  Enter       evaluate the input (empty line finishes a block)
  Up/Down     recall earlier inputs
  :debug      toggle token and tree dumps
  :history    show recent inputs
  :quit       leave the REPL
  Ctrl+C      leave the REPL`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false, "do not persist inputs to the history database")
}

func runRepl(cmd *cobra.Command, args []string) error {
	replCfg := repl.Config{
		HistoryPath: cfg.GetString("history.path"),
		HistorySize: cfg.GetInt("repl.history_size", 50),
		Logger:      corelog.GetDefault(),
	}

	if replNoHistory || !cfg.GetBool("history.enabled", true) {
		replCfg.HistoryPath = ""
	} else if replCfg.HistoryPath == "" {
		replCfg.HistoryPath = history.DefaultPath()
	}

	return repl.Run(replCfg)
}
