package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores blobs as files under a root directory.
type Disk struct {
	root string
}

// NewDisk creates a disk backend rooted at root.
func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

func (d *Disk) Write(path string, r io.Reader) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	// O_EXCL makes the write-once guarantee: a concurrent or same-second
	// duplicate fails before any bytes are read from r.
	dst, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrExists
		}
		return fmt.Errorf("failed to create blob: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(full)
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return dst.Close()
}

func (d *Disk) Read(path string) (io.ReadCloser, error) {
	full, err := d.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return f, nil
}

func (d *Disk) Delete(path string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// resolve joins path onto the root and rejects anything that escapes it.
func (d *Disk) resolve(path string) (string, error) {
	full := filepath.Join(d.root, filepath.FromSlash(path))
	root := filepath.Clean(d.root)
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", fmt.Errorf("blob path escapes storage root: %q", path)
	}
	return full, nil
}
