// File: doc.go
// Title: History Package Documentation
// Description: Package history persists transpilation and REPL inputs
//              in a per-user SQLite database.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-19
// Modified: 2026-06-19
//
// Change History:
// - 2026-06-19 v0.1.0: Initial implementation

/*
Package history stores past transpilations in SQLite.

The REPL records every submitted input together with the Python it
produced and whether the transpilation succeeded, and reads recent
entries back for up-arrow style recall:

	st, err := history.Open(history.Config{Path: path})
	defer st.Close()
	_ = st.Add(ctx, &history.Entry{Source: src, Python: py, OK: true})
	entries, err := st.Recent(ctx, 50)

The database lives at ~/.brahmic/history.db unless configured
otherwise; Open creates the parent directory and the schema on first
use. The store is safe for concurrent use.
*/
package history
