// Package version provides the tool version and host runtime introspection.
package version

// Version contains the hello-host version number.
var Version = "0.1"
