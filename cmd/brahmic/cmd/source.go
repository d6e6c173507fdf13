package cmd

import (
	"fmt"

	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/pkg/teng"
)

// newTranspiler builds a transpiler from the resolved configuration
func newTranspiler() (*teng.Transpiler, error) {
	return teng.New(teng.Options{
		Logger:         corelog.GetDefault(),
		MaxInputLength: cfg.GetInt("transpiler.max_input_bytes", 1<<20),
	})
}

// resolveSource returns the Tenglish source either from the -c flag or
// from the file argument, plus a display name for diagnostics.
func resolveSource(t *teng.Transpiler, args []string, code string) (source, name string, err error) {
	if code != "" {
		if len(args) > 0 {
			return "", "", fmt.Errorf("cannot combine -c with a file argument")
		}
		return code, "<cmdline>", nil
	}

	if len(args) != 1 {
		return "", "", fmt.Errorf("expected exactly one source file (or -c 'code')")
	}

	source, err = t.ReadSource(args[0])
	if err != nil {
		return "", "", err
	}
	return source, args[0], nil
}
