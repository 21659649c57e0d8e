//go:build windows

package envstore

import (
	"os"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/arthur-debert/mayamod/pkg/errors"
	"github.com/arthur-debert/mayamod/pkg/logging"
)

const environmentKey = `Environment`

// User is the user-scope persistent Store, backed by the per-user
// environment registry key (HKCU\Environment). Values written there become
// visible to newly started processes, not to already-running ones.
//
// Get prefers the registry over the process environment: a value written by
// a previous run is visible to the next run before any new session has
// picked it up, which is what makes repeated runs idempotent.
type User struct{}

// NewUser creates a user-scope store. configDir is accepted for signature
// parity with the POSIX implementation and ignored here.
func NewUser(configDir string) *User {
	return &User{}
}

// Get implements Store.
func (u *User) Get(name string) (string, bool) {
	key, err := registry.OpenKey(registry.CURRENT_USER, environmentKey, registry.QUERY_VALUE)
	if err == nil {
		defer key.Close()
		if value, _, err := key.GetStringValue(name); err == nil {
			return value, true
		}
	}
	return os.LookupEnv(name)
}

// Set implements Store.
func (u *User) Set(name, value string) error {
	logger := logging.GetLogger("envstore.user")

	key, err := registry.OpenKey(registry.CURRENT_USER, environmentKey, registry.SET_VALUE)
	if err != nil {
		return errors.Wrap(err, errors.ErrEnvWrite, "cannot open user environment registry key").
			WithDetail("variable", name)
	}
	defer key.Close()

	// Values referencing other variables must stay expandable
	if strings.Contains(value, "%") {
		err = key.SetExpandStringValue(name, value)
	} else {
		err = key.SetStringValue(name, value)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "cannot write user environment variable %s", name)
	}

	logger.Debug().Str("variable", name).Msg("Persisted user environment variable")
	return nil
}

// Snippet returns the profile snippet needed to activate persisted values.
// The registry needs none, new sessions pick changes up on their own.
func (u *User) Snippet() string {
	return ""
}
