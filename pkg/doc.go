// Package bumpversion increments the version number declared in a Go source file.
//
// It provides functionalities for:
//   - Finding a `const VERSION_NUMBER = "..."` declaration in a file.
//   - Incrementing the last dot-separated segment of that version, zero-padded to
//     at least three digits (e.g. 0000.0001.044 → 0000.0001.045, 1.2.999 → 1.2.1000).
//   - Rewriting the source file and writing the bare new version to a side file
//     (by default "_version.txt") for other release tooling to pick up.
//
// The pure Bump function works on text alone, so callers can bump versions
// without touching disk. Run and DryRun wrap it with file I/O.
//
// Usage Example:
//
//	import (
//	    "log"
//	    bumpversion "github.com/korovkin/bumpversion/pkg"
//	)
//
//	func main() {
//	    meta, err := bumpversion.Run("version.go", "_version.txt")
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Println("bumped", meta.OldVersion, "to", meta.NewVersion)
//	}
package bumpversion
