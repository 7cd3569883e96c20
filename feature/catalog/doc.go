// Package catalog serves a dump output file over HTTP.
//
// The file is read lazily from disk or object storage and indexed by type id
// and by normalized name. Every request checks the source's modification time
// and reloads the file when it changed; concurrent reloads are collapsed with
// singleflight so a burst of requests after a new dump triggers one read.
//
// # Routes
//
//   - GET /types            every type, optionally filtered by ?group=
//   - GET /types/:id        one type by id
//   - GET /types/name/:name one type by case-insensitive name
package catalog
