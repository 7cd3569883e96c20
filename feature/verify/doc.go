// Package verify checks a dump output file against the guarantees the dump
// pipeline makes: unique type ids, and components that are non-empty, only
// on allow-listed groups and keyed by their parent type.
package verify
