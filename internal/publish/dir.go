package publish

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir writes artifacts as files under a root directory
type Dir struct {
	root string
}

// NewDir creates a Dir publisher rooted at root, creating it if needed.
// An empty root means the working directory.
func NewDir(root string) (*Dir, error) {
	if root == "" {
		root = "."
	}
	root, err := ExpandHome(root)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Dir{root: root}, nil
}

// Root returns the directory artifacts are written under
func (d *Dir) Root() string {
	return d.root
}

// Path resolves an artifact path against the root
func (d *Dir) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.root, name)
}

// Publish writes the artifact through a temporary file in the same
// directory, so readers never see a partial file.
func (d *Dir) Publish(a Artifact) (string, error) {
	path, err := ExpandHome(a.Path)
	if err != nil {
		return "", err
	}
	path = d.Path(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
