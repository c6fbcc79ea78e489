package script

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "scripts"))
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	return repo
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"normal name", "foo", false},
		{"name with extension", "backup.sh", false},
		{"name with dashes", "sync-notes", false},
		{"empty name", "", true},
		{"hidden name", ".hidden", true},
		{"reserved trash name", "trash", true},
		{"path separator", "foo/bar", true},
		{"parent traversal", "../foo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !IsInvalidName(err) {
				t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", tt.input, err)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Create("foo"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	info, err := os.Stat(repo.Path("foo"))
	if err != nil {
		t.Fatalf("created script missing: %v", err)
	}
	if mode := info.Mode().Perm(); mode&0100 == 0 {
		t.Errorf("created script mode = %v, want owner-executable", mode)
	}

	content, err := os.ReadFile(repo.Path("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "#!/bin/zsh\n\n" {
		t.Errorf("created script content = %q, want shebang template", content)
	}
}

func TestCreateExisting(t *testing.T) {
	repo := newTestRepo(t)

	if err := os.WriteFile(repo.Path("foo"), []byte("original contents\n"), 0755); err != nil {
		t.Fatal(err)
	}

	err := repo.Create("foo")
	if !IsExists(err) {
		t.Fatalf("Create() error = %v, want ErrExists", err)
	}

	// existing file must be untouched
	content, err := os.ReadFile(repo.Path("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "original contents\n" {
		t.Errorf("existing script content changed: %q", content)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		hidden  []string
		subdirs []string
		want    []string
	}{
		{
			name: "empty directory",
			want: []string{},
		},
		{
			name:    "hidden files and trash excluded",
			files:   []string{"foo"},
			hidden:  []string{".hidden"},
			subdirs: []string{"trash"},
			want:    []string{"foo"},
		},
		{
			name:  "sorted by name",
			files: []string{"zeta", "alpha", "mid"},
			want:  []string{"alpha", "mid", "zeta"},
		},
		{
			name:    "subdirectories are not scripts",
			files:   []string{"foo"},
			subdirs: []string{"notes"},
			want:    []string{"foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			for _, f := range append(tt.files, tt.hidden...) {
				if err := os.WriteFile(repo.Path(f), []byte("#!/bin/sh\n"), 0755); err != nil {
					t.Fatal(err)
				}
			}
			for _, d := range tt.subdirs {
				if err := os.Mkdir(filepath.Join(repo.Root(), d), 0755); err != nil {
					t.Fatal(err)
				}
			}

			got, err := repo.List()
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("List() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrash(t *testing.T) {
	repo := newTestRepo(t)

	for _, name := range []string{"foo", "bar"} {
		if err := repo.Create(name); err != nil {
			t.Fatal(err)
		}
	}

	if err := repo.Trash("foo"); err != nil {
		t.Fatalf("Trash() error = %v", err)
	}

	if repo.Exists("foo") {
		t.Error("trashed script still present in script directory")
	}
	if _, err := os.Stat(repo.TrashPath("foo")); err != nil {
		t.Errorf("trashed script missing from trash: %v", err)
	}

	names, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"bar"}) {
		t.Errorf("List() after trash = %v, want [bar]", names)
	}

	// trashing another script must not disturb earlier trashed entries
	if err := repo.Trash("bar"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(repo.TrashPath("foo")); err != nil {
		t.Errorf("earlier trashed entry disturbed: %v", err)
	}
}

func TestTrashOverwritesSameName(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Create("foo"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Trash("foo"); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(repo.Path("foo"), []byte("second version\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := repo.Trash("foo"); err != nil {
		t.Fatalf("Trash() with same-named trashed entry error = %v", err)
	}

	content, err := os.ReadFile(repo.TrashPath("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "second version\n" {
		t.Errorf("trash entry content = %q, want replacement", content)
	}
}

func TestTrashMissing(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Create("foo"); err != nil {
		t.Fatal(err)
	}

	err := repo.Trash("nope")
	if !IsNotFound(err) {
		t.Fatalf("Trash() error = %v, want ErrNotFound", err)
	}

	// listing must be unchanged
	names, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"foo"}) {
		t.Errorf("List() after failed trash = %v, want [foo]", names)
	}
}
