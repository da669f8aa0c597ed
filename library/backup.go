package library

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// CreateBackup snapshots the live database file into dir and returns the
// snapshot path. The WAL is checkpointed first so the copied file is a
// complete, self-contained database.
func (d *Database) CreateBackup(dir string) (string, error) {
	if _, err := d.db.Exec(`PRAGMA wal_checkpoint(TRUNCATE);`); err != nil {
		return "", fmt.Errorf("checkpoint before backup: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	dest := filepath.Join(dir, fmt.Sprintf("library_backup_%s.db", time.Now().Format("20060102_150405")))
	if err := copyFile(d.path, dest); err != nil {
		return "", fmt.Errorf("copy snapshot: %w", err)
	}
	return dest, nil
}

// ListBackups returns the snapshot files in dir, oldest first. A missing
// directory yields an empty list.
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".db") {
			continue
		}
		names = append(names, filepath.Join(dir, e.Name()))
	}
	sort.Strings(names)
	return names, nil
}

// RestoreBackup replaces the live database with the snapshot at src. The
// handle is closed around the file copy and reopened on the restored file;
// on success all prior in-memory state (prepared statements included) refers
// to the restored database.
func (d *Database) RestoreBackup(src string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("backup %s: %w", src, ErrNotFound)
	}

	if err := d.Close(); err != nil {
		return fmt.Errorf("close before restore: %w", err)
	}

	// Stale WAL sidecars would shadow the restored file.
	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(d.path + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s sidecar: %w", suffix, err)
		}
	}

	if err := copyFile(src, d.path); err != nil {
		return fmt.Errorf("copy snapshot: %w", err)
	}

	reopened, err := NewDatabase(d.path)
	if err != nil {
		return fmt.Errorf("reopen after restore: %w", err)
	}
	*d = *reopened
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
