package fs

import (
	"encoding/csv"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJSON writes v as JSON, creating missing parent directories and
// overwriting an existing file.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	return writeFile(path, data)
}

// LoadJSON reads a JSON file into a value of type T.
func LoadJSON[T any](path string) (T, error) {
	var v T
	data, err := os.ReadFile(Abs(path))
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return v, nil
}

// SaveCSV writes rows, creating missing parent directories and overwriting
// an existing file.
func SaveCSV(path string, rows [][]string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// LoadCSV reads all rows of a CSV file.
func LoadCSV(path string) ([][]string, error) {
	f, err := os.Open(Abs(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// SaveGob writes v in gob encoding, the binary format for Go-internal
// snapshots.
func SaveGob(path string, v any) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// LoadGob reads a gob file into a value of type T.
func LoadGob[T any](path string) (T, error) {
	var v T
	f, err := os.Open(Abs(path))
	if err != nil {
		return v, err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return v, nil
}

// SaveText writes a string, creating missing parent directories and
// overwriting an existing file.
func SaveText(path, text string) error {
	return writeFile(path, []byte(text))
}

// LoadText reads a file as a string.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(Abs(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AppendText appends a line to a file, creating it (and missing parent
// directories) when absent. A newline separates the new content from
// existing content.
func AppendText(path, text string) error {
	abs := Abs(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory of %s: %w", path, err)
	}

	f, err := os.OpenFile(abs, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		text = "\n" + text
	}
	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return f.Close()
}

func createFile(path string) (*os.File, error) {
	abs := Abs(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory of %s: %w", path, err)
	}
	f, err := os.Create(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

func writeFile(path string, data []byte) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
