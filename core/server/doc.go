// Package server holds the catalog HTTP server configuration and constants.
//
// The serve command reads these settings to decide which port to listen on,
// which API key protects the catalog routes and where the served type file
// comes from (a local file or the storage bucket it was published to).
package server
