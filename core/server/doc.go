// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the buyer identity and the page rendering mode.
//
// # Configuration
//
// The Config struct defines the HTTP port, the buyer served by the buyer view
// and whether pages are rendered as HTML or plain JSON.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the marketplace feature to decide how pages are rendered.
package server
