package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// golang-migrate reads paired .up.sql/.down.sql files; goose reads
// single files with Up/Down annotations. Each strategy ships its own
// directory, and a file in the wrong format would only fail at
// migration time, so the formats are checked here.

func TestGolangMigrateScriptsArePaired(t *testing.T) {
	entries, err := os.ReadDir("scripts")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %q in scripts directory", name)
		}
	}

	assert.Equal(t, ups, downs, "every up script needs a matching down script")
}

func TestGooseScriptsAreAnnotated(t *testing.T) {
	entries, err := os.ReadDir("goosescripts")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		name := e.Name()
		assert.True(t, strings.HasSuffix(name, ".sql"), "unexpected file %q in goosescripts directory", name)
		assert.False(t, strings.HasSuffix(name, ".up.sql") || strings.HasSuffix(name, ".down.sql"),
			"%q is in golang-migrate format; goose would reject the paired versions", name)

		content, err := os.ReadFile(filepath.Join("goosescripts", name))
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", name)
		assert.Contains(t, string(content), "-- +goose Down", name)
	}
}
