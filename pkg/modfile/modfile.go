// Package modfile reads and rewrites Maya module description (.mod) files.
//
// A module description starts with a descriptor line of the form
// "+ [FLAG:value ...] <name> <version> <path>", followed by free-form
// environment lines. Installing a module means placing
// a copy of this file in the user's modules folder with the path field
// rewritten to the module's actual install location.
package modfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mayamod/pkg/errors"
)

// Extension is the module description file extension.
const Extension = ".mod"

// File is a loaded module description.
type File struct {
	lines []string
}

// Load reads a module description from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrModFileNotFound, "module file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read module file %s", path)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	f := &File{lines: lines}
	if _, err := f.descriptorIndex(); err != nil {
		return nil, err
	}
	return f, nil
}

// Save writes the module description to disk.
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create modules folder %s", filepath.Dir(path))
	}
	content := strings.Join(f.lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write module file %s", path)
	}
	return nil
}

// ModuleName returns the name field of the descriptor line.
func (f *File) ModuleName() string {
	name, _, _, _ := f.descriptorFields()
	return name
}

// Version returns the version field of the descriptor line.
func (f *File) Version() string {
	_, version, _, _ := f.descriptorFields()
	return version
}

// ModulePath returns the path field of the descriptor line.
func (f *File) ModulePath() string {
	_, _, path, _ := f.descriptorFields()
	return path
}

// SetModulePath rewrites the descriptor's path field to dir, leaving flags,
// name, version and all remaining lines alone.
func (f *File) SetModulePath(dir string) error {
	idx, err := f.descriptorIndex()
	if err != nil {
		return err
	}

	tokens := strings.Fields(f.lines[idx])
	pathStart, err := pathFieldIndex(tokens)
	if err != nil {
		return err
	}

	f.lines[idx] = strings.Join(tokens[:pathStart], " ") + " " + dir
	return nil
}

// String renders the module description content.
func (f *File) String() string {
	return strings.Join(f.lines, "\n") + "\n"
}

func (f *File) descriptorIndex() (int, error) {
	for i, line := range f.lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "-") {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrModFileParse, "no descriptor line starting with + or - found")
}

func (f *File) descriptorFields() (name, version, path string, err error) {
	idx, err := f.descriptorIndex()
	if err != nil {
		return "", "", "", err
	}

	tokens := strings.Fields(f.lines[idx])
	pathStart, err := pathFieldIndex(tokens)
	if err != nil {
		return "", "", "", err
	}

	return tokens[pathStart-2], tokens[pathStart-1], strings.Join(tokens[pathStart:], " "), nil
}

// pathFieldIndex returns the token index where the path field begins:
// after the sign, any FLAG:value tokens, the name and the version.
func pathFieldIndex(tokens []string) (int, error) {
	i := 1 // skip the + or - sign
	for i < len(tokens) && strings.Contains(tokens[i], ":") {
		i++
	}
	// name, version, then at least one path token
	if i+2 >= len(tokens) {
		return 0, errors.New(errors.ErrModFileParse, "descriptor line is missing name, version or path fields")
	}
	return i + 2, nil
}

// FindDescriptor locates the module description file inside dir. With
// several candidates, one named after the directory wins, otherwise the
// first in lexical order is used.
func FindDescriptor(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+Extension))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot scan %s for module files", dir)
	}
	if len(matches) == 0 {
		return "", errors.Newf(errors.ErrModFileNotFound, "no %s file found in %s", Extension, dir)
	}

	preferred := filepath.Join(dir, filepath.Base(dir)+Extension)
	for _, match := range matches {
		if match == preferred {
			return match, nil
		}
	}
	return matches[0], nil
}
