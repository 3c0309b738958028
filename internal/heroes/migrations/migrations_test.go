package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/JaimeStill/hero-catalog/internal/heroes/migrations"
)

func TestFS_UpAndDownPaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS, migrations.Dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	files := make(map[string]bool, len(entries))
	for _, e := range entries {
		files[e.Name()] = true
	}

	var ups int
	for name := range files {
		base, ok := strings.CutSuffix(name, ".up.sql")
		if !ok {
			continue
		}
		ups++
		if !files[base+".down.sql"] {
			t.Errorf("%s has no down migration", name)
		}
	}
	if ups != 3 {
		t.Errorf("up migrations = %d, want 3", ups)
	}
}

func TestFS_NicknameIndexDropped(t *testing.T) {
	data, err := fs.ReadFile(migrations.FS, "000003_drop_heroes_nickname_idx.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "DROP INDEX IF EXISTS heroes_nickname_idx") {
		t.Errorf("migration does not drop heroes_nickname_idx:\n%s", data)
	}
}
