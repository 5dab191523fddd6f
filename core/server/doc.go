// Package server holds the HTTP server configuration.
//
// The main entry point handles the actual server startup; this package only
// defines the configuration structure (port, API key) embedded by
// core/config.
package server
