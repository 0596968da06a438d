/*
Package config provides configuration management for the vigil CLI.

Configuration is loaded from a YAML file (by default ~/.vigil.yaml), merged
with defaults, overridden by VIGIL_* environment variables, and validated as
a whole so that every problem is reported at once:

	cfg, err := config.LoadWithEnvOverrides(path)
	if err != nil {
		// err lists every invalid field
	}

A missing config file is not an error; the CLI runs with defaults.
*/
package config
