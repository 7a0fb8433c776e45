// Package config provides configuration loading, merging, and validation
// facilities for the vault daemon and CLI.
//
// Configuration is assembled from multiple sources. A field takes its value
// from the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
