// Package config loads, merges and validates the relief sync client
// configuration.
//
// Sources are merged field by field; the first source that sets a field
// wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (JSON, or YAML when the path ends in .yaml/.yml)
//  4. Built-in defaults
//
// [GetClientConfig] is the entry point used by cmd/client.
package config
