package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Health probe stays public; everything else on /api is authenticated
	return []string{"/health"}
}
