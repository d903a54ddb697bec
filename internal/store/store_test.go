package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

var sample = []wheel.Option{
	{Name: "Pizza", Weight: 10},
	{Name: "Sushi", Weight: 10},
	{Name: "Tacos", Weight: 80},
}

// exerciseStore runs the whole-list contract against any backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	got, err := s.LoadOptions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, s.SaveOptions(ctx, sample))
	got, err = s.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	reordered := []wheel.Option{sample[2], {Name: "Pizza", Weight: 1}}
	require.NoError(t, s.SaveOptions(ctx, reordered))
	got, err = s.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, reordered, got)

	require.NoError(t, s.SaveOptions(ctx, nil))
	got, err = s.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data", "options.json"))
	exerciseStore(t, s)
	require.NoError(t, s.Close())
}

func TestFileStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	s := NewFileStore(path)
	require.NoError(t, s.SaveOptions(context.Background(), sample[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"Pizza\",\n    \"weight\": 10\n  }\n]\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should not be left behind")
}

func TestFileStoreLegacyProbability(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	legacy := `[{"name": "Pizza", "probability": 30}, {"name": "Sushi", "weight": 5, "probability": 99}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	got, err := NewFileStore(path).LoadOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []wheel.Option{{Name: "Pizza", Weight: 30}, {Name: "Sushi", Weight: 5}}, got)
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).LoadOptions(context.Background())
	assert.Error(t, err)
}

func TestFileStoreMatchesSchema(t *testing.T) {
	schema, err := jsonschema.Compile(filepath.Join("..", "..", "schemas", "options.schema.json"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "options.json")
	s := NewFileStore(path)
	ctx := context.Background()

	for _, list := range [][]wheel.Option{nil, sample} {
		require.NoError(t, s.SaveOptions(ctx, list))
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var v any
		require.NoError(t, json.Unmarshal(data, &v))
		assert.NoError(t, schema.Validate(v))
	}

	var bad any
	require.NoError(t, json.Unmarshal([]byte(`[{"name": "", "weight": 1.5}]`), &bad))
	assert.Error(t, schema.Validate(bad))
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "wheel.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStoreInMemory(t *testing.T) {
	s, err := NewSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SaveOptions(ctx, sample))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, Config{Driver: "file", Path: filepath.Join(dir, "o.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(ctx, Config{Driver: "sqlite", Path: filepath.Join(dir, "o.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Config{Driver: "mongo"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
