// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The main entry points are [GetServerConfig] for the mirror daemon and
// [GetClientConfig] for the terminal panel. Both validate their view of the
// merged [StructuredConfig] before returning it.
package config
