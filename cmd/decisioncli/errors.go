// Package: lvlath-decision/cmd/decisioncli
package main

// Exit codes, prescribed by spec.md §6 for CLI wrappers: the core
// library returns typed errors, and this thin wrapper buckets them
// into a process exit status uniform across any such wrapper.
const (
	exitSuccess    = 0
	exitParseError = 2
	exitModelError = 3
	exitSolveError = 4
	exitIOError    = 5
)
