//go:build !windows

package envstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mayamod/pkg/errors"
	"github.com/arthur-debert/mayamod/pkg/logging"
	"github.com/arthur-debert/mayamod/pkg/paths"
)

const scriptHeader = `# Managed by mayamod. Edits to unmanaged lines are preserved.`

// User is the user-scope persistent Store. There is no per-user environment
// registry on POSIX hosts, so persistence is a managed environment script
// under the mayamod config directory. The script holds one export line per
// variable and is sourced from the shell profile (see Snippet).
//
// Get prefers the script over the process environment: a value written by a
// previous run is visible to the next run even though no new shell has
// sourced it yet, which is what makes repeated runs idempotent.
type User struct {
	scriptPath string
}

// NewUser creates a user-scope store persisting under configDir.
func NewUser(configDir string) *User {
	return &User{scriptPath: filepath.Join(configDir, paths.EnvScriptName)}
}

// Get implements Store.
func (u *User) Get(name string) (string, bool) {
	if value, ok := u.scriptValue(name); ok {
		return value, true
	}
	return os.LookupEnv(name)
}

// Set implements Store. The export line for name is replaced in place when
// present, appended otherwise. All other script content is kept verbatim.
func (u *User) Set(name, value string) error {
	logger := logging.GetLogger("envstore.user")

	lines, err := u.scriptLines()
	if err != nil {
		return err
	}

	exportLine := fmt.Sprintf(`export %s="%s"`, name, value)
	replaced := false
	for i, line := range lines {
		if lineName, _, ok := parseExport(line); ok && lineName == name {
			lines[i] = exportLine
			replaced = true
			break
		}
	}
	if !replaced {
		if len(lines) == 0 {
			lines = append(lines, scriptHeader)
		}
		lines = append(lines, exportLine)
	}

	if err := os.MkdirAll(filepath.Dir(u.scriptPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create config directory for %s", u.scriptPath)
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(u.scriptPath, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "cannot write environment script %s", u.scriptPath).
			WithDetail("variable", name)
	}

	logger.Debug().Str("variable", name).Str("script", u.scriptPath).Msg("Persisted user environment variable")
	return nil
}

// ScriptPath returns the location of the managed environment script.
func (u *User) ScriptPath() string {
	return u.scriptPath
}

// Snippet returns the one-line profile snippet that makes the managed
// script effective in new shell sessions.
func (u *User) Snippet() string {
	return fmt.Sprintf(`[ -f "%s" ] && . "%s"`, u.scriptPath, u.scriptPath)
}

func (u *User) scriptValue(name string) (string, bool) {
	lines, err := u.scriptLines()
	if err != nil {
		return "", false
	}
	for _, line := range lines {
		if lineName, value, ok := parseExport(line); ok && lineName == name {
			return value, true
		}
	}
	return "", false
}

func (u *User) scriptLines() ([]string, error) {
	data, err := os.ReadFile(u.scriptPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnvRead, "cannot read environment script %s", u.scriptPath)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

// parseExport recognizes the export lines this store writes itself.
func parseExport(line string) (name, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	rest, found := strings.CutPrefix(trimmed, "export ")
	if !found {
		return "", "", false
	}
	name, value, found = strings.Cut(rest, "=")
	if !found || name == "" {
		return "", "", false
	}
	value = strings.TrimSuffix(strings.TrimPrefix(value, `"`), `"`)
	return name, value, true
}
