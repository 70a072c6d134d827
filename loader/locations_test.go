package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations(t *testing.T) {
	db, err := New("ITEM_DB", 3, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		kind LocationKind
		want []string
	}{
		{
			name: "normal database",
			kind: LocationNormal,
			want: []string{
				filepath.Join("db", "item_db.yml"),
				filepath.Join("db", "import", "item_db.yml"),
			},
		},
		{
			name: "split database",
			kind: LocationSplit,
			want: []string{
				filepath.Join("db", "re", "item_db.yml"),
				filepath.Join("db", "import", "item_db.yml"),
			},
		},
		{
			name: "conf database",
			kind: LocationConf,
			want: []string{
				filepath.Join("conf", "item_db.yml"),
				filepath.Join("conf", "import", "item_db.yml"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := db.Locations("item_db.yml", tt.kind)
			assert.Equal(t, tt.want, got)

			// Idempotent and pure: a second call yields identical output.
			assert.Equal(t, got, db.Locations("item_db.yml", tt.kind))

			// The base path always precedes the import/override path.
			require.Len(t, got, 2)
			assert.Contains(t, got[1], "import")
		})
	}

	t.Run("unknown kind yields nil", func(t *testing.T) {
		assert.Nil(t, db.Locations("item_db.yml", LocationKind(42)))
	})
}

func TestLocationsWithCustomLayout(t *testing.T) {
	db, err := New("ITEM_DB", 3, 1,
		WithDatabasePath("data"),
		WithConfPath("settings"),
		WithVariantDir("pre-re"),
		WithImportDir("overrides"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("data", "pre-re", "mob_db.yml"),
		filepath.Join("data", "overrides", "mob_db.yml"),
	}, db.Locations("mob_db.yml", LocationSplit))

	// The conf tree keeps its fixed import subdirectory.
	assert.Equal(t, []string{
		filepath.Join("settings", "battle.yml"),
		filepath.Join("settings", "import", "battle.yml"),
	}, db.Locations("battle.yml", LocationConf))
}

func TestLocationKindString(t *testing.T) {
	assert.Equal(t, "normal", LocationNormal.String())
	assert.Equal(t, "split", LocationSplit.String())
	assert.Equal(t, "conf", LocationConf.String())
	assert.Equal(t, "unknown", LocationKind(42).String())
}
