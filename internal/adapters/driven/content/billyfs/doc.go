// Package billyfs adapts a billy filesystem to the ContentSource port.
//
// Production code roots the source at the book's src directory with
// NewOS; tests use an in-memory filesystem via New(memfs.New()).
package billyfs
