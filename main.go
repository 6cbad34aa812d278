// Package main implements a CLI tool to bump the version number in a Go source file
// and record the new version in a side file.
package main

import (
	"flag"
	"fmt"
	"os"

	bumpversion "github.com/korovkin/bumpversion/pkg"
)

func usage() {
	msg := `Usage:
  bumpversion [options]

Increments the last segment of the version declared as
  const VERSION_NUMBER = "X.Y.Z"
in a Go source file (default: ./version.go), rewrites the file and writes the bare
new version to a side file (default: ./_version.txt). The last segment is zero-padded
to at least three digits.

Examples:
  bumpversion
  bumpversion -dry
  bumpversion -version-file internal/version.go -version-out build/version.txt

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func main() {
	versionFile := flag.String("version-file", bumpversion.DefaultVersionFile, "Path to the Go file containing the VERSION_NUMBER declaration")
	sideFile := flag.String("version-out", bumpversion.DefaultSideFile, "Path of the side file that receives the bare new version")
	dryRun := flag.Bool("dry", false, "Perform a dry run without modifying any files")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.Bool("help", false, "Show help message and exit")

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("bumpversion CLI version", VERSION_NUMBER)
		os.Exit(0)
	}

	if flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: unexpected arguments:", flag.Args())
		usage()
		os.Exit(1)
	}

	var meta bumpversion.VersionMeta
	var err error

	if *dryRun {
		meta, err = bumpversion.DryRun(*versionFile, *sideFile)
	} else {
		meta, err = bumpversion.Run(*versionFile, *sideFile)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println("bump_version: => version:", meta.OldVersion, "=>", meta.NewVersion)

	if *dryRun {
		fmt.Println("Dry run complete — no files were modified.")
	}
	if meta.Module != "" {
		fmt.Printf("Module:      %s\n", meta.Module)
	}
	if *dryRun {
		fmt.Println("Files that would be updated:")
	} else {
		fmt.Println("Files updated:")
	}
	for _, f := range meta.UpdatedFiles {
		fmt.Printf("  %s\n", f)
	}
}
