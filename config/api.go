package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public read paths: search/export the query screen uses, dashboard, GraphQL
	return []string{
		"/search",
		"/search/options",
		"/search/export",
		"/dashboard/stats",
		"/graphql",
		"/playground",
	}
}
