// Package commands contains the use cases that change the dish and order
// collections.
//
// Every command is built by its constructor, which checks what can be
// checked without the store. Checks that depend on the stored record run
// inside the repository's Replace or Remove callback, so they see the same
// record that is written back.
package commands
