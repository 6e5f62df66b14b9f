// Package config provides configuration loading, merging, and validation
// facilities for the go-secrets server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Legacy variables (PORT, SECRET, SALT_ROUNDS, PG_HOST, PG_PORT,
//     PG_USER, PG_PASSWORD, PG_DB)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// A .env file in the working directory is loaded into the process
// environment first, so its values feed sources 1 and 2 without overriding
// variables that are already set.
//
// The main entry point is [GetStructuredConfig].
package config
