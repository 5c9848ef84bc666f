// Package app wires one address lookup together: it owns the validated
// configuration and the logger, asks a Searcher for matching addresses, and
// renders them. It knows nothing about argument parsing or exit codes.
package app
