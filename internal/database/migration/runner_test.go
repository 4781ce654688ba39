package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_OrderedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V2__add_stats.sql", "CREATE TABLE stats (id INT);")
	writeFile(t, dir, "V1__init.sql", "CREATE TABLE users (id INT);")
	writeFile(t, dir, "V10__add_applications.sql", "CREATE TABLE applications (id INT);")
	writeFile(t, dir, "notes.txt", "not a migration")
	writeFile(t, dir, "V3_bad_name.sql", "SELECT 1;")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	// Numeric ordering, not lexicographic: 1, 2, 10.
	if migs[0].Version != 1 || migs[1].Version != 2 || migs[2].Version != 10 {
		t.Fatalf("unexpected order: %d %d %d", migs[0].Version, migs[1].Version, migs[2].Version)
	}
	if migs[0].Name != "init" {
		t.Fatalf("unexpected name: %q", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct non-empty checksums")
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__init.sql", "CREATE TABLE users (id INT);")
	writeFile(t, dir, "V1__init_again.sql", "CREATE TABLE users2 (id INT);")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected duplicate-version error")
	}
}

func TestLoadMigrations_EmptyFileRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__init.sql", "   \n")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected empty-file error")
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}
