// Package cli resolves the positional command-line arguments into the
// application's configuration and maps errors to process exit codes.
package cli
