package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretranslate/internal/dictionary"
	"caretranslate/internal/storage"
)

func intPtr(v int) *int { return &v }

// newTestOptions backs every command with the same in-memory store.
func newTestOptions(t *testing.T) (*options, *dictionary.Store) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	store := dictionary.New(context.Background(), storage.NewMemorySlot(),
		dictionary.WithClock(func() time.Time { return now }),
		dictionary.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	opts := &options{openStore: func(context.Context, *options, io.Writer) (*dictionary.Store, func() error, error) {
		return store, func() error { return nil }, nil
	}}
	return opts, store
}

func execute(t *testing.T, opts *options, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(opts)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDriver_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Driver
		wantErr bool
	}{
		{name: "memory", value: "memory", want: "memory"},
		{name: "postgres", value: "postgres", want: "postgres"},
		{name: "invalid", value: "redis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Driver
			err := d.Set(tt.value)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid driver")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
			assert.Equal(t, tt.value, d.String())
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand(&options{})
	assert.Equal(t, "dictctl", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("driver"))

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "show", "stats", "export", "import", "clear"}, names)
}

func TestListAndShow(t *testing.T) {
	opts, store := newTestOptions(t)
	flu := store.Save(context.Background(), "Influenza", "## Analogy\nLike a cold, but **stronger**.\n* Rest", "medical", intPtr(2))
	store.Save(context.Background(), "Susto", "Soul loss", "cultural", nil)

	out, err := execute(t, opts, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Influenza")
	assert.Contains(t, out, "Susto")

	out, err = execute(t, opts, "list", "flu")
	require.NoError(t, err)
	assert.Contains(t, out, "Influenza")
	assert.NotContains(t, out, "Susto")

	out, err = execute(t, opts, "list", "nothing-matches")
	require.NoError(t, err)
	assert.Equal(t, "no entries\n", out)

	out, err = execute(t, opts, "show", flu.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Influenza\n")
	assert.Contains(t, out, "medical · saved 10/19/2026 · complexity 2/5")
	assert.Contains(t, out, "💡 Analogy")
	assert.Contains(t, out, "Like a cold, but stronger.")
	assert.Contains(t, out, "  • Rest")

	_, err = execute(t, opts, "show", "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestStats(t *testing.T) {
	opts, store := newTestOptions(t)
	store.Save(context.Background(), "Angina", "Chest pain", "medical", intPtr(4))

	out, err := execute(t, opts, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "total entries:      1")
	assert.Contains(t, out, "average complexity: 4.0")
	assert.Contains(t, out, "categories:         medical")
}

func TestExportImportClear(t *testing.T) {
	opts, store := newTestOptions(t)
	store.Save(context.Background(), "Angina", "Chest pain", "medical", nil)

	path := filepath.Join(t.TempDir(), "dict.json")
	_, err := execute(t, opts, "export", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, store.Export(), string(data))

	_, err = execute(t, opts, "clear")
	assert.ErrorContains(t, err, "--yes")
	assert.Len(t, store.All(), 1)

	out, err := execute(t, opts, "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "dictionary cleared")
	assert.Empty(t, store.All())

	out, err = execute(t, opts, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 entries")
	assert.Equal(t, "Angina", store.All()[0].Term)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not":"an array"}`), 0o644))
	_, err = execute(t, opts, "import", bad)
	assert.ErrorContains(t, err, "not a valid dictionary export")
	assert.Len(t, store.All(), 1)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, `a <b> & "c" bold it`, plainText(`a &lt;b&gt; &amp; &#34;c&#34; <strong>bold</strong> <em>it</em>`))
}
