package bumpversion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultVersionFile is the source file holding the version declaration.
	DefaultVersionFile = "version.go"
	// DefaultSideFile receives the bare new version for other release tooling.
	DefaultSideFile = "_version.txt"
)

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion   string   // The version before bumping.
	NewVersion   string   // The new version after bumping.
	Module       string   // Module path of the enclosing go.mod, if any.
	UpdatedFiles []string // Paths written (or that would be written on a dry run).
}

// readSource reads the version file and bumps its contents in memory.
func readSource(versionFilePath string) (Result, error) {
	data, err := os.ReadFile(versionFilePath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read version file: %w", err)
	}
	res, err := Bump(string(data))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = versionFilePath
		}
		return Result{}, err
	}
	return res, nil
}

// writeFile overwrites path with data, keeping the mode of an existing file.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// newMeta fills in the fields shared by Run and DryRun.
func newMeta(versionFilePath, sideFilePath string, res Result) VersionMeta {
	meta := VersionMeta{
		OldVersion:   res.OldVersion,
		NewVersion:   res.NewVersion,
		UpdatedFiles: []string{versionFilePath, sideFilePath},
	}
	if dir, err := locateGoModDir(filepath.Dir(versionFilePath)); err == nil {
		if mod, err := modulePath(dir); err == nil {
			meta.Module = mod
		}
	}
	return meta
}

// Run bumps the version declared in versionFilePath, rewrites that file in place
// and writes the bare new version to sideFilePath.
//
// Parse and format errors are returned before anything is written. The two
// writes are not atomic as a pair: if writing the side file fails the version
// file has already been rewritten.
func Run(versionFilePath, sideFilePath string) (VersionMeta, error) {
	res, err := readSource(versionFilePath)
	if err != nil {
		return VersionMeta{}, err
	}

	if err := writeFile(versionFilePath, []byte(res.Text)); err != nil {
		return VersionMeta{}, err
	}
	if err := writeFile(sideFilePath, []byte(res.NewVersion)); err != nil {
		return VersionMeta{}, err
	}

	return newMeta(versionFilePath, sideFilePath, res), nil
}

// DryRun computes the bump Run would perform without writing any file.
func DryRun(versionFilePath, sideFilePath string) (VersionMeta, error) {
	res, err := readSource(versionFilePath)
	if err != nil {
		return VersionMeta{}, err
	}
	return newMeta(versionFilePath, sideFilePath, res), nil
}
