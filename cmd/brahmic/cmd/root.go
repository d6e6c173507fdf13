package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	coreconfig "github.com/brahmic-lang/brahmic/internal/core/config"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
)

var (
	cfgFile string
	verbose bool

	// cfg is resolved once before any subcommand runs.
	cfg *coreconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "brahmic",
	Short: "Brahmic - Tenglish to Python transpiler",
	Long: `Brahmic translates Tenglish programs (Telugu keywords in Latin
script, Python-shaped syntax) into Python 3 source code and can run
the result in an embedded interpreter.

Commands:
  run        - transpile a program and execute it
  transpile  - transpile a program and print or save the Python
  inspect    - dump tokens and the parse tree
  repl       - interactive Tenglish shell
  serve      - websocket playground server`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = coreconfig.LoadDefault(cfgFile)
		if err != nil {
			return err
		}

		level, err := corelog.ParseLevel(cfg.GetString("log.level", "info"))
		if err != nil {
			level = corelog.LevelInfo
		}
		if verbose {
			level = corelog.LevelDebug
		}
		corelog.SetDefault(corelog.GetDefault().WithLevel(level))

		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("command failed", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.brahmic/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
