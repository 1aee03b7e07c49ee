// Package config provides configuration loading, merging, and validation
// facilities for the go-trust-keeper server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source receive package defaults (challenge
// lifetime, token duration, elevation lifetime and so on).
//
// The main entry points are [GetStructuredConfig] for server configuration
// and [GetClientConfig] for client-specific configuration.
package config
