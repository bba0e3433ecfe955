// Package config provides configuration loading, merging, and validation
// facilities for the biz-records server, its management commands and the
// command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] for the API server,
// [GetStructuredConfig] for management commands and [GetClientConfig] for
// the command-line client.
package config
