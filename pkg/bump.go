package bumpversion

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DeclarationPattern matches the version declaration and captures the version string.
// The (?s) flag lets the declaration sit anywhere in a multi-line file.
var DeclarationPattern = regexp.MustCompile(`(?s)const VERSION_NUMBER = "([^"]*)"`)

// Result is the outcome of bumping the text of a version source file.
type Result struct {
	Text       string // The full file text with the version replaced.
	OldVersion string // The version found in the declaration.
	NewVersion string // The version after incrementing the last segment.
}

// ParseError reports that no usable version declaration was found.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing %s: %s", e.Path, e.Reason)
	}
	return "parsing version: " + e.Reason
}

// FormatError reports that the last version segment is not a non-negative integer.
type FormatError struct {
	Segment string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("last version segment %q is not a non-negative integer: %v", e.Segment, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// findVersion returns the version captured by the first declaration in text.
func findVersion(text string) (string, error) {
	m := DeclarationPattern.FindStringSubmatch(text)
	if m == nil {
		return "", &ParseError{Reason: `no const VERSION_NUMBER = "..." declaration found`}
	}
	return m[1], nil
}

// BumpSegment increments a single numeric segment and pads the result
// to at least three digits. Wider values are kept at full width.
func BumpSegment(segment string) (string, error) {
	n, err := strconv.ParseUint(segment, 10, 64)
	if err != nil {
		return "", &FormatError{Segment: segment, Err: err}
	}
	if n == math.MaxUint64 {
		return "", &FormatError{Segment: segment, Err: strconv.ErrRange}
	}
	return fmt.Sprintf("%03d", n+1), nil
}

// bumpVersion increments the last dot-separated segment of version.
// All other segments are copied verbatim.
func bumpVersion(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) == 0 {
		return "", &ParseError{Reason: "version has no segments"}
	}
	last, err := BumpSegment(parts[len(parts)-1])
	if err != nil {
		return "", err
	}
	parts[len(parts)-1] = last
	return strings.Join(parts, "."), nil
}

// Bump finds the version declaration in text, increments its last segment and
// returns the rewritten text along with both versions.
//
// Only the first textual occurrence of the old version is replaced, wherever it
// appears in text. If the old version string also shows up before the
// declaration (in a comment, say) that earlier occurrence is the one rewritten.
func Bump(text string) (Result, error) {
	var res Result

	oldVersion, err := findVersion(text)
	if err != nil {
		return res, err
	}
	newVersion, err := bumpVersion(oldVersion)
	if err != nil {
		return res, err
	}

	res.OldVersion = oldVersion
	res.NewVersion = newVersion
	res.Text = strings.Replace(text, oldVersion, newVersion, 1)
	return res, nil
}
