// Package sqlite provides embedded SQLite database access with connection
// validation and a small statement builder for table-oriented workloads.
//
// The package uses the pure-Go modernc.org/sqlite driver, so binaries stay
// cgo-free. Connect opens (and creates, when missing) the database file and
// verifies it with a ping before returning:
//
//	cfg := sqlite.Config{Path: "data/app.db"}
//	db, err := sqlite.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
// Use ":memory:" as the path for an ephemeral in-memory database, which is
// handy in tests.
//
// # Configuration
//
// Configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		Path        string        `env:"SQLITE_PATH,required"`
//		BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"60s"`
//	}
//
// BusyTimeout controls how long a statement waits on a locked database
// before failing, mirroring the driver's busy_timeout pragma.
//
// # Store
//
// Store wraps a connection with convenience operations for simple
// table-per-type persistence:
//
//	store := sqlite.NewStore(db)
//	err := store.CreateTable(ctx, "users", []string{
//	    "id INTEGER PRIMARY KEY",
//	    "name TEXT",
//	    "age INTEGER",
//	})
//	err = store.Insert(ctx, "users", []map[string]any{
//	    {"name": "alice", "age": 30},
//	    {"name": "bob", "age": 25},
//	})
//	rows, err := store.Select(ctx, "users", map[string]any{"name": "alice"})
//
// Column values are always bound as statement parameters. Table and column
// names are quoted but interpolated, so they must come from trusted code
// rather than user input.
//
// # Error Handling
//
// The package defines domain-specific errors checked with errors.Is():
//
//   - ErrNotReady: the database did not answer the connection ping
//   - ErrNoRows: Insert was called without rows
//   - ErrNoColumns: CreateTable was called without column definitions
package sqlite
