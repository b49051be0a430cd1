package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/libris":   "pgx5://u:p@localhost:5432/libris",
		"postgresql://u:p@localhost:5432/libris": "pgx5://u:p@localhost:5432/libris",
		"pgx5://u:p@localhost/libris":            "pgx5://u:p@localhost/libris",
		"host=localhost dbname=libris":           "host=localhost dbname=libris",
	}

	for in, want := range tests {
		assert.Equal(t, want, convertToPgx5DSN(in), in)
	}
}

func TestSource_Embedded(t *testing.T) {
	entries, err := fs.Glob(Source(""), "*.up.sql")
	require.NoError(t, err)
	assert.Contains(t, entries, "000001_create_library.up.sql")
}

func TestSource_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init.up.sql"), []byte("SELECT 1;"), 0o600))

	entries, err := fs.Glob(Source(dir), "*.up.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init.up.sql"}, entries)
}
