// Package file provides the file-based configuration adapter.
//
// A book's configuration lives in a book.toml file at the book root,
// with [book] and [build] tables. Environment variables prefixed with
// TOME_ overlay the file values, so CI can override configuration
// without touching book.toml.
package file
