// Package config provides type-safe configuration loading from environment
// variables and from JSON files.
//
// # Environment Variables
//
// Each configuration type is loaded once and cached for subsequent calls.
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
//	import "github.com/FrauElster/goutil/core/config"
//
//	type DatabaseConfig struct {
//		Path    string        `env:"DB_PATH" envDefault:"data.db"`
//		Timeout time.Duration `env:"DB_TIMEOUT" envDefault:"60s"`
//	}
//
//	func main() {
//		var db DatabaseConfig
//
//		// Load with error handling
//		if err := config.Load(&db); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&db)
//	}
//
// Each type is loaded only once per application lifetime; different types are
// cached independently.
//
// # JSON Files
//
// LoadFile reads a JSON object and validates it against key descriptors.
// Missing or malformed required keys fail the load with all problems
// aggregated; optional problems are logged and the key is skipped:
//
//	file, err := config.LoadFile("config.json",
//		config.Key{Name: "listen_port", Required: true},
//		config.Key{Name: "refresh_rate"},
//		config.Key{Name: "gateway", Decode: decodeGateway},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	port := config.Value(file, "listen_port", 8080.0)
package config
