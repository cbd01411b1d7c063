// Package config provides pipeline configuration and path management.
//
// Configuration is loaded from environment variables (IPEDS_ prefix) and an
// optional YAML file, then validated before any data is read. Paths collects
// every file location the pipeline touches so that the assembler, the report
// commands, and the tests all agree on where the raw surveys, the cleaned
// panel, and the generated artifacts live.
package config
