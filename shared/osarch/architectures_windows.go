package osarch

import (
	"runtime"
)

// ArchitectureGetLocal returns the local hardware architecture name.
//
// Windows has no uname(2), so the name is mapped from the Go
// architecture identifier instead.
func ArchitectureGetLocal() (string, error) {
	id, err := ArchitectureId(runtime.GOARCH)
	if err != nil {
		return ArchitectureDefault, err
	}

	return ArchitectureName(id)
}
