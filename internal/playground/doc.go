// File: doc.go
// Title: Playground Package Documentation
// Description: Package playground serves a websocket endpoint that
//              transpiles and optionally runs Tenglish programs sent
//              by connected clients.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-06-20
//
// Change History:
// - 2026-06-20 v0.1.0: Initial implementation

/*
Package playground exposes the transpiler over a websocket.

A client connects to /ws and sends JSON messages of the form

	{"type": "transpile", "payload": {"source": "(\"Hi\")cheppu"}}
	{"type": "run",       "payload": {"source": "(\"Hi\")cheppu"}}
	{"type": "ping"}

and receives

	{"type": "result", "payload": {"python": "...", "stdout": "..."}}
	{"type": "error",  "payload": {"code": "...", "message": "..."}}
	{"type": "pong"}

Each connection gets a session ID for log correlation. GET /healthz
answers 200 for liveness probes. The server shuts down gracefully via
Stop.
*/
package playground
