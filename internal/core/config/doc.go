// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads brahmic's configuration from TOML
//              and YAML files with environment variable overrides and
//              built-in defaults for the transpiler, history store,
//              REPL, and playground server.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-16
// Modified: 2026-06-16
//
// Change History:
// - 2026-06-16 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the brahmic CLI.

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := config.Load("config.toml")
	if err != nil {
		return err
	}

	addr := cfg.GetString("server.addr", ":8089")
	limit := cfg.GetInt("transpiler.max_input_bytes")
	timeout := cfg.GetDuration("server.shutdown_timeout", 5*time.Second)

# Resolution for CLI Invocations

LoadDefault resolves the config file the way the brahmic command does:
an explicit --config path wins, then the BRAHMIC_CONFIG environment
variable, then ~/.brahmic/config.toml. When no file exists the built-in
defaults apply:

	cfg, err := config.LoadDefault(flagConfigPath)

# Environment Variable Overrides

Every key can be overridden through the environment using the BRAHMIC
prefix with dots replaced by underscores:

	export BRAHMIC_SERVER_ADDR=":9000"
	export BRAHMIC_LOG_LEVEL="debug"
	export BRAHMIC_HISTORY_ENABLED="false"

Environment values take precedence over file values and defaults.

All access is safe for concurrent use.
*/
package config
