//go:build !windows

package version

import (
	"github.com/hello-host/hello-host/shared"
)

// OSName returns the operating system family name as reported by
// uname(2), e.g. "Linux" or "Darwin".
func OSName() (string, error) {
	uname, err := shared.Uname()
	if err != nil {
		return "", err
	}

	return uname.Sysname, nil
}
