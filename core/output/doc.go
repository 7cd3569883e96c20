// Package output writes extraction results to disk.
//
// WriteJSON is the only writer: both the name-keyed cache output and the
// dump array go through it, so every produced file shares the same encoding
// (2-space indent, HTML characters left unescaped, trailing newline) and the
// same temp-file-then-rename replacement.
package output
