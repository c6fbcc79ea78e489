package script

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

const (
	// TrashDirName is the reserved subdirectory holding soft-deleted scripts.
	TrashDirName = "trash"

	// initialContent is written into every newly created script.
	initialContent = "#!/bin/zsh\n\n"

	// scriptMode makes a script executable by its owner (and readable by all).
	scriptMode = os.FileMode(0755)
)

// Repository manages the flat directory of ephemeral scripts. A script is a
// regular file directly under the root; hidden files and the trash
// subdirectory are not scripts.
type Repository struct {
	root string
}

// NewRepository opens the repository rooted at dir, creating the directory
// if it does not exist yet.
func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &RepositoryError{Op: "init", Err: err}
	}
	return &Repository{root: dir}, nil
}

// Root returns the script directory path.
func (r *Repository) Root() string {
	return r.root
}

// Path returns the path a script of the given name would have. The name is
// not validated here.
func (r *Repository) Path(name string) string {
	return filepath.Join(r.root, name)
}

// TrashPath returns the path a trashed script of the given name would have.
func (r *Repository) TrashPath(name string) string {
	return filepath.Join(r.root, TrashDirName, name)
}

// Exists reports whether a script of the given name is present.
func (r *Repository) Exists(name string) bool {
	_, err := os.Stat(r.Path(name))
	return err == nil
}

// ValidateName rejects names that can never identify a script: empty names,
// names with path separators, hidden names, and the reserved trash name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q is a hidden name", ErrInvalidName, name)
	case name == TrashDirName:
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	return nil
}

// List returns the names of all scripts, sorted by name. Hidden entries,
// the trash subdirectory and anything that is not a regular file are
// skipped.
func (r *Repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, &RepositoryError{Op: "list", Err: err}
	}

	// os.ReadDir sorts by name already
	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			return "", false
		}
		if strings.HasPrefix(name, ".") || name == TrashDirName {
			return "", false
		}
		return name, true
	})
	return names, nil
}

// Create writes a new script with the shebang template and makes it
// executable. Returns ErrExists when a script of that name is already
// present.
func (r *Repository) Create(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	path := r.Path(name)
	if r.Exists(name) {
		return ErrExists
	}
	if err := os.WriteFile(path, []byte(initialContent), 0644); err != nil {
		return &RepositoryError{Op: "create", Name: name, Err: err}
	}
	// chmod explicitly so the executable bits survive any umask
	if err := os.Chmod(path, scriptMode); err != nil {
		return &RepositoryError{Op: "create", Name: name, Err: err}
	}
	slog.Debug("script created", "script", name, "path", path)
	return nil
}

// Trash soft-deletes a script by renaming it into the trash subdirectory,
// creating that subdirectory if needed. A same-named entry already in trash
// is replaced. Returns ErrNotFound when the script is not present.
func (r *Repository) Trash(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !r.Exists(name) {
		return ErrNotFound
	}
	trashDir := filepath.Join(r.root, TrashDirName)
	if err := os.MkdirAll(trashDir, 0755); err != nil {
		return &RepositoryError{Op: "trash", Name: name, Err: err}
	}
	if err := os.Rename(r.Path(name), r.TrashPath(name)); err != nil {
		return &RepositoryError{Op: "trash", Name: name, Err: err}
	}
	slog.Debug("script moved to trash", "script", name)
	return nil
}
