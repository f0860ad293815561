// Package schema provides the implementations for handling (Unix-based)
// operating system syscalls. The package serves as the foundational layer
// for filesystem interactions throughout the codebase, so that consumers can
// depend on narrow provider interfaces and substitute them in tests.
package schema
