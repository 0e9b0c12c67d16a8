// Package file stores each key as a JSON file in a directory. Writes go to a
// temporary file that is fsynced and renamed over the target, and the directory
// is fsynced after the rename, so a crash, power loss or a full disk leaves
// either the old document or the new one.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KV is a directory-backed key-value medium.
type KV struct {
	dir string
}

// Open creates dir if needed and returns a KV rooted there.
func Open(dir string) (*KV, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("file kv: directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file kv: create dir: %w", err)
	}
	return &KV{dir: dir}, nil
}

// Get returns the stored value, or found=false when the key was never written.
func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(k.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("file kv: read %q: %w", key, err)
	}
	return b, true, nil
}

// Set atomically replaces the value stored under key.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := k.path(key)

	tmp, err := os.CreateTemp(k.dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("file kv: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file kv: write %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file kv: sync %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file kv: close %q: %w", key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("file kv: replace %q: %w", key, err)
	}
	if err := syncDir(k.dir); err != nil {
		return fmt.Errorf("file kv: sync dir for %q: %w", key, err)
	}
	return nil
}

// syncDir makes a rename inside dir durable.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	if err := d.Sync(); err != nil {
		_ = d.Close()
		return err
	}
	return d.Close()
}

// Ping verifies the directory is still there.
func (k *KV) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(k.dir)
	if err != nil {
		return fmt.Errorf("file kv: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("file kv: %s is not a directory", k.dir)
	}
	return nil
}

func (k *KV) path(key string) string {
	return filepath.Join(k.dir, fileName(key)+".json")
}

// fileName maps a key to a safe file name. Bytes outside [A-Za-z0-9._-] are
// written as %XX, so distinct keys never share a file.
func fileName(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-', c == '_':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
