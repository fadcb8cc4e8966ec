// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded
//     first, without overriding variables that are already set)
//  2. Command-line flags
//  3. JSON config file
//
// Zero-valued fields are then filled with defaults and the result is
// validated.
//
// The main entry points are [GetStructuredConfig] for server configuration
// and [GetClientConfig] for the command-line client.
package config
