// Package middleware contains HTTP middleware for the catalog server.
//
// # Components
//
//   - auth: API key validation protecting the catalog routes.
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally in the serve command.
package middleware
