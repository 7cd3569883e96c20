// Package types implements the dump pipeline: it obtains a static data
// snapshot, projects every invTypes row into a TypeRecord and writes the
// result as a JSON array.
//
// The snapshot is either downloaded and decompressed into a temporary
// directory, read from an existing sqlite file, or queried from a MySQL
// import of the static data export. Rare capital hulls in the component
// allow-list get their build materials attached.
package types
