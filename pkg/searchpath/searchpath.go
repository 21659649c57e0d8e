// Package searchpath models the value of a search-path environment variable:
// an ordered list of directory strings joined by the platform list separator.
//
// Entries are never validated or deduplicated. A value is split, inspected
// and re-joined exactly as it was found, stray delimiters included, so that
// writing the list back never rewrites content this tool did not add.
package searchpath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mayamod/pkg/errors"
)

// Policy selects how a candidate directory is compared against the entries
// already present in the list.
type Policy string

const (
	// PolicyExact compares entries as literal strings. An entry that names
	// the same directory with different casing or a trailing separator is
	// not a match and a duplicate will be appended.
	PolicyExact Policy = "exact"

	// PolicyFold compares entries case-insensitively but otherwise
	// literally, matching case-insensitive filesystem semantics. This is
	// the default.
	PolicyFold Policy = "fold"

	// PolicyClean cleans both paths (trailing separators, "." and ".."
	// segments) and then compares case-insensitively.
	PolicyClean Policy = "clean"
)

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyExact, PolicyFold, PolicyClean:
		return Policy(s), nil
	case "":
		return PolicyFold, nil
	}
	return "", errors.Newf(errors.ErrConfigValid, "unknown compare policy %q (want exact, fold or clean)", s)
}

// Equal reports whether entry and dir name the same directory under the policy.
func (p Policy) Equal(entry, dir string) bool {
	switch p {
	case PolicyFold:
		return strings.EqualFold(entry, dir)
	case PolicyClean:
		return strings.EqualFold(clean(entry), clean(dir))
	default:
		return entry == dir
	}
}

func clean(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

// Separator returns the platform list separator as a string.
func Separator() string {
	return string(os.PathListSeparator)
}

// List is an ordered sequence of directory entries read from one variable.
type List struct {
	entries []string
	sep     string
}

// Parse splits value on the platform list separator.
// An empty value yields an empty list, not a single empty entry.
func Parse(value string) *List {
	return ParseSep(value, Separator())
}

// ParseSep splits value on an explicit separator.
func ParseSep(value, sep string) *List {
	l := &List{sep: sep}
	if value != "" {
		l.entries = strings.Split(value, sep)
	}
	return l
}

// Entries returns a copy of the list entries in order.
func (l *List) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries, stray empties included.
func (l *List) Len() int {
	return len(l.entries)
}

// Contains reports whether dir matches any entry under the given policy.
func (l *List) Contains(dir string, policy Policy) bool {
	for _, entry := range l.entries {
		if entry == "" {
			continue
		}
		if policy.Equal(entry, dir) {
			return true
		}
	}
	return false
}

// Append adds dir to the end of the list.
func (l *List) Append(dir string) {
	l.entries = append(l.entries, dir)
}

// String joins the entries back into a variable value. A single-entry list
// renders without any separator.
func (l *List) String() string {
	return strings.Join(l.entries, l.sep)
}
