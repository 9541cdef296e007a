package version

// OSName returns the operating system family name.
func OSName() (string, error) {
	return "Windows", nil
}
