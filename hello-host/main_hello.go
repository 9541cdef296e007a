package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hello-host/hello-host/shared/osarch"
	"github.com/hello-host/hello-host/shared/version"
)

type cmdHello struct{}

func (c *cmdHello) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "hello-host"
	cmd.Short = "Host platform greeter"
	cmd.Long = `Description:
  Host platform greeter

  This tool prints a greeting with the host operating system family and
  machine architecture, followed by the version of the hosting runtime,
  then exits.

  It takes no flags and ignores any arguments it is given.
`
	cmd.RunE = c.Run

	// No CLI surface: anything passed on the command line is ignored.
	cmd.Args = cobra.ArbitraryArgs
	cmd.DisableFlagParsing = true

	return cmd
}

func (c *cmdHello) Run(cmd *cobra.Command, args []string) error {
	osName, err := version.OSName()
	if err != nil {
		return fmt.Errorf("Platform information unavailable: %w", err)
	}

	machineArch, err := osarch.ArchitectureGetLocal()
	if err != nil {
		return fmt.Errorf("Platform information unavailable: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), renderReport(osName, machineArch, version.RuntimeVersion()))
	return err
}

// renderReport formats the two output lines. The "Python version:" label
// is kept as-is for output compatibility with the tool this one replaces;
// the value is the hosting runtime's version.
func renderReport(osName string, machineArch string, runtimeVersion string) string {
	report := fmt.Sprintf("Hello, world from %s %s!\n", osName, machineArch)
	report += fmt.Sprintf("Python version: %s\n", runtimeVersion)

	return report
}
