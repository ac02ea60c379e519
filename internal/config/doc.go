// Package config provides configuration management for the GraphDB relay.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values have sensible defaults for development use: the
// relay listens on port 8000 and talks to a local GraphDB on port 7200.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
