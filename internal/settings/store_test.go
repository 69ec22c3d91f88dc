package settings

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	kiterrors "github.com/voicepod/devicekit-go/internal/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(slog.Default(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStoreSetAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetString(ctx, "assets", "download_url", "https://assets.example/v2"))

	got, err := store.GetString(ctx, "assets", "download_url")
	require.NoError(t, err)
	require.Equal(t, "https://assets.example/v2", got)
}

func TestStoreUnsetKeyReturnsEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.GetString(context.Background(), "assets", "missing")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStoreOverwrite(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetString(ctx, "wifi", "ssid", "old"))
	require.NoError(t, store.SetString(ctx, "wifi", "ssid", "new"))

	got, err := store.GetString(ctx, "wifi", "ssid")
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestStoreNamespacesAreIsolated(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetString(ctx, "assets", "url", "a"))
	require.NoError(t, store.SetString(ctx, "ota", "url", "b"))

	got, err := store.GetString(ctx, "assets", "url")
	require.NoError(t, err)
	require.Equal(t, "a", got)

	got, err = store.GetString(ctx, "ota", "url")
	require.NoError(t, err)
	require.Equal(t, "b", got)
}

func TestStorePersistsOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	store, err := Open(slog.Default(), path)
	require.NoError(t, err)
	require.NoError(t, store.SetString(ctx, "assets", "download_url", "https://assets.example"))
	require.NoError(t, store.Close())

	reopened, err := Open(slog.Default(), path)
	require.NoError(t, err)

	defer reopened.Close()

	got, err := reopened.GetString(ctx, "assets", "download_url")
	require.NoError(t, err)
	require.Equal(t, "https://assets.example", got)
}

func TestStoreClosed(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.GetString(context.Background(), "a", "b")
	require.ErrorIs(t, err, kiterrors.ErrSettingsClosed)

	err = store.SetString(context.Background(), "a", "b", "c")
	require.ErrorIs(t, err, kiterrors.ErrSettingsClosed)
}
