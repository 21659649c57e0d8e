package envstore

import "os"

// Process is a Store backed by the environment of the running process.
// Changes are visible to this process and its children only.
type Process struct{}

// NewProcess creates a process-environment store.
func NewProcess() *Process {
	return &Process{}
}

// Get implements Store.
func (p *Process) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Set implements Store.
func (p *Process) Set(name, value string) error {
	return os.Setenv(name, value)
}
