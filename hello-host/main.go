package main

import (
	"os"

	"github.com/hello-host/hello-host/shared/logger"
)

func main() {
	err := logger.InitLogger(false, false)
	if err != nil {
		os.Exit(1)
	}

	// hello command (main)
	helloCmd := cmdHello{}
	app := helloCmd.Command()
	app.SilenceUsage = true
	app.SilenceErrors = true

	// Run the main command and handle errors
	err = app.Execute()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
