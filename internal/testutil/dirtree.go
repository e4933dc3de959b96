// Package testutil provides helpers shared across tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const (
	dirPerm  = 0o755
	filePerm = 0o600
)

// DirTree is a temporary directory populated with test subdirectories
type DirTree struct {
	t    *testing.T
	Root string
}

// NewDirTree creates a temporary directory containing the given relative directories
func NewDirTree(t *testing.T, dirs ...string) *DirTree {
	t.Helper()

	tree := &DirTree{t: t, Root: t.TempDir()}
	for _, dir := range dirs {
		tree.Mkdir(dir)
	}
	return tree
}

// Path returns the uncanonicalized path of rel inside the tree
func (d *DirTree) Path(rel string) string {
	if rel == "" {
		return d.Root
	}
	return filepath.Join(d.Root, rel)
}

// Canonical returns the symlink-free absolute path of rel inside the tree.
// Temp directories may live behind symlinks (e.g. /var -> /private/var on macOS).
func (d *DirTree) Canonical(rel string) string {
	d.t.Helper()

	resolved, err := filepath.EvalSymlinks(d.Path(rel))
	if err != nil {
		d.t.Fatalf("resolve %s: %v", rel, err)
	}
	return resolved
}

// Mkdir creates rel (and parents) inside the tree
func (d *DirTree) Mkdir(rel string) {
	d.t.Helper()

	if err := os.MkdirAll(d.Path(rel), dirPerm); err != nil {
		d.t.Fatalf("mkdir %s: %v", rel, err)
	}
}

// WriteFile creates a file with content inside the tree, creating parents as needed
func (d *DirTree) WriteFile(rel, content string) {
	d.t.Helper()

	path := d.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		d.t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		d.t.Fatalf("write %s: %v", rel, err)
	}
}

// RequireBinary skips the test when name is not on PATH
func RequireBinary(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}
