// Package config provides configuration loading, merging, and validation
// for the nudge server, terminal client and seed tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env.local / .env files and environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetServerConfig] and [GetClientConfig], which return
// validated views of [StructuredConfig].
package config
