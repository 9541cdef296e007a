//go:build !windows

package osarch

import (
	"github.com/hello-host/hello-host/shared"
)

// ArchitectureGetLocal returns the local hardware architecture name.
func ArchitectureGetLocal() (string, error) {
	uname, err := shared.Uname()
	if err != nil {
		return ArchitectureDefault, err
	}

	return uname.Machine, nil
}
