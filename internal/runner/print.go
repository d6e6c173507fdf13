// File: print.go
// Title: Print Capture
// Description: Redirects a module's print builtin into a Go writer so
//              program output can be captured for the REPL and the
//              playground instead of going to process stdout.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-17
// Modified: 2026-06-17
//
// Change History:
// - 2026-06-17 v0.1.0: Initial implementation

package runner

import (
	"io"
	"strings"

	"github.com/go-python/gpython/py"
)

// redirectPrint installs a print implementation writing to w into the
// module globals. Name resolution checks globals before builtins, so
// every print call in the module lands in w.
func redirectPrint(module *py.Module, w io.Writer) {
	module.Globals["print"] = py.MustNewMethod("print", func(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
		sep := " "
		end := "\n"

		if kwargs != nil {
			if v, ok := kwargs["sep"]; ok && v != py.None {
				s, ok := v.(py.String)
				if !ok {
					return nil, py.ExceptionNewf(py.TypeError, "sep must be None or a str, not %s", v.Type().Name)
				}
				sep = string(s)
			}
			if v, ok := kwargs["end"]; ok && v != py.None {
				s, ok := v.(py.String)
				if !ok {
					return nil, py.ExceptionNewf(py.TypeError, "end must be None or a str, not %s", v.Type().Name)
				}
				end = string(s)
			}
		}

		parts := make([]string, len(args))
		for i, arg := range args {
			s, err := py.StrAsString(arg)
			if err != nil {
				return nil, err
			}
			parts[i] = s
		}

		if _, err := io.WriteString(w, strings.Join(parts, sep)+end); err != nil {
			return nil, py.ExceptionNewf(py.OSError, "write failed: %v", err)
		}

		return py.None, nil
	}, 0, "print(value, ..., sep=' ', end='\\n')")
}
