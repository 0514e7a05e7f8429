// Package config provides configuration loading, merging, and validation
// facilities for the API servers.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults (listen address, request timeout)
//
// The main entry point is [GetStructuredConfig].
package config
