package version

import (
	"runtime"
	"strings"
)

// RuntimeVersion returns the version of the executing Go runtime, reduced
// to its leading whitespace-delimited token with the "go" prefix stripped
// ("go1.22.6" becomes "1.22.6"). Development toolchains keep their raw
// leading token.
func RuntimeVersion() string {
	return parseRuntimeVersion(runtime.Version())
}

func parseRuntimeVersion(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return full
	}

	return strings.TrimPrefix(fields[0], "go")
}
