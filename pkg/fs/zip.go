package fs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CreateZip bundles the named member files into an archive at path. Member
// paths are resolved against the root like every other path in this package,
// and members that do not exist on disk are skipped. When overwrite is false
// and the archive already exists, CreateZip returns os.ErrExist.
func CreateZip(path string, members []string, overwrite bool) error {
	abs := Abs(path)
	if !overwrite {
		if _, err := os.Stat(abs); err == nil {
			return fmt.Errorf("archive %s: %w", path, os.ErrExist)
		}
	}

	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, member := range members {
		if err := addZipMember(w, member); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

// AppendToZip adds member files to an existing archive, creating the archive
// when it does not exist yet. Since the zip format does not support in-place
// appends, the archive is rewritten with the old entries carried over.
// Members that do not exist on disk are skipped.
func AppendToZip(path string, members []string) error {
	abs := Abs(path)
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return CreateZip(path, members, false)
	}

	old, err := zip.OpenReader(abs)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer old.Close()

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".zip-*")
	if err != nil {
		return fmt.Errorf("failed to create temp archive for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	w := zip.NewWriter(tmp)
	for _, entry := range old.File {
		if err := copyZipEntry(w, entry); err != nil {
			w.Close()
			return fmt.Errorf("failed to carry over %s in %s: %w", entry.Name, path, err)
		}
	}
	for _, member := range members {
		if err := addZipMember(w, member); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := old.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), abs)
}

func addZipMember(w *zip.Writer, member string) error {
	abs := Abs(member)
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return nil
	}

	src, err := os.Open(abs)
	if err != nil {
		return fmt.Errorf("failed to open member %s: %w", member, err)
	}
	defer src.Close()

	dst, err := w.Create(filepath.Base(abs))
	if err != nil {
		return fmt.Errorf("failed to add member %s: %w", member, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write member %s: %w", member, err)
	}
	return nil
}

func copyZipEntry(w *zip.Writer, entry *zip.File) error {
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := w.CreateHeader(&entry.FileHeader)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
