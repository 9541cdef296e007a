package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRuntimeVersion(t *testing.T) {
	require.Equal(t, "3.11.4", parseRuntimeVersion("3.11.4 (main, Jun  7 2023, 00:38:39) [GCC 12.2.0]"))
	require.Equal(t, "1.22.6", parseRuntimeVersion("go1.22.6"))
	require.Equal(t, "devel", parseRuntimeVersion("devel go1.23-0123456789 Mon Jan 1 00:00:00 2024 +0000"))
}

func TestRuntimeVersion(t *testing.T) {
	v := RuntimeVersion()
	require.NotEmpty(t, v)
	require.NotContains(t, v, " ")
}

func TestOSName(t *testing.T) {
	name, err := OSName()
	require.NoError(t, err)
	require.NotEmpty(t, name)
}
