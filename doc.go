// Package main implements the bumpversion CLI tool.
//
// The bumpversion tool is run once per release. It reads the version declared in
// a Go file (default "./version.go") as
//
//	const VERSION_NUMBER = "0000.0001.044"
//
// increments the last dot-separated segment, zero-padded to at least three digits,
// writes the file back and stores the bare new version in a side file
// (default "./_version.txt") for other release tooling.
//
// Command Usage:
//
//	bumpversion [flags]
//
// Flags:
//
//	-version-file: Path to the Go file containing the VERSION_NUMBER declaration.
//	               (Defaults to "version.go")
//	-version-out:  Path of the side file receiving the new version.
//	               (Defaults to "_version.txt")
//	-dry:          Report the bump without modifying any files.
//	-version:      Displays the version of the bumpversion CLI tool and exits.
//
// Examples:
//
//	# Bump 0000.0001.044 to 0000.0001.045
//	bumpversion
//
//	# Bump 2.5.999 to 2.5.1000 in a file outside the current directory
//	bumpversion -version-file=internal/version.go -version-out=build/version.txt
//
// Running the tool twice always produces two different versions: it is a
// counter, not a setter. Files are only written once the declaration has been
// found and its last segment parsed.
//
// For the library API see the "pkg" package.
package main
