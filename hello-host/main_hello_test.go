package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runHello(t *testing.T, args ...string) string {
	t.Helper()

	hello := cmdHello{}
	cmd := hello.Command()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	require.NoError(t, err)

	return out.String()
}

func TestRenderReport(t *testing.T) {
	report := renderReport("Linux", "x86_64", "3.11.4")
	require.Equal(t, "Hello, world from Linux x86_64!\nPython version: 3.11.4\n", report)
}

func TestRunOutputShape(t *testing.T) {
	out := runHello(t)
	require.True(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Regexp(t, `^Hello, world from \S+ \S+!$`, lines[0])
	require.Regexp(t, `^Python version: \S+$`, lines[1])
}

func TestRunIdempotent(t *testing.T) {
	require.Equal(t, runHello(t), runHello(t))
}

func TestRunIgnoresArguments(t *testing.T) {
	require.Equal(t, runHello(t), runHello(t, "--foo", "bar"))
	require.Equal(t, runHello(t), runHello(t, "extra", "arguments"))
}
