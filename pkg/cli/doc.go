// Package cli implements the tokenfmt command-line interface.
//
// Commands:
//   - format: render a template against data files and --set pairs
//   - check: validate template syntax without resolving data
//   - version: print build information
//
// Data sources are merged in order (files first, then --set pairs), with
// later sources winning. Logging is configured through the persistent
// --log-level and --log-format flags.
package cli
