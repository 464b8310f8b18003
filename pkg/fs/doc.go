// Package fs provides file persistence helpers: typed save/load for JSON,
// CSV, gob, and plain text, directory utilities, zip archives, and
// project-root-relative path resolution.
//
// # Path Resolution
//
// All helpers accept absolute paths as-is and resolve relative paths against
// the package root, which defaults to the working directory:
//
//	fs.SetRoot("/srv/app")
//	fs.Abs("data/users.json") // "/srv/app/data/users.json"
//
// # Typed Persistence
//
// Instead of dispatching on the file extension, each format has an explicit
// pair of functions:
//
//	if err := fs.SaveJSON("data/users.json", users); err != nil { ... }
//	users, err := fs.LoadJSON[[]User]("data/users.json")
//
//	rows, err := fs.LoadCSV("report.csv")
//	text, err := fs.LoadText("notes.txt")
//
// Gob is the binary format for Go-internal snapshots:
//
//	err := fs.SaveGob("cache.gob", snapshot)
//	snapshot, err := fs.LoadGob[Snapshot]("cache.gob")
//
// Save functions create missing parent directories.
//
// # Archives
//
// CreateZip and AppendToZip bundle files into archives, resolving each
// member path and skipping members that do not exist.
package fs
