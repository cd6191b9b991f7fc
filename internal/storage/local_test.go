package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"jobtrack_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStorage(t *testing.T) storage.Storage {
	t.Helper()

	st, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: t.TempDir(),
	})
	require.NoError(t, err)
	return st
}

func TestLocalStorage_SaveAndGet(t *testing.T) {
	t.Parallel()

	st := newLocalStorage(t)
	ctx := context.Background()

	content := "%PDF-1.4 test content"
	require.NoError(t, st.Save(ctx, "1700000000-abcd.pdf", strings.NewReader(content), "application/pdf"))

	rc, err := st.Get(ctx, "1700000000-abcd.pdf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	size, err := st.GetSize(ctx, "1700000000-abcd.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)
}

func TestLocalStorage_Exists(t *testing.T) {
	t.Parallel()

	st := newLocalStorage(t)
	ctx := context.Background()

	exists, err := st.Exists(ctx, "missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, st.Save(ctx, "present.pdf", strings.NewReader("data"), "application/pdf"))

	exists, err = st.Exists(ctx, "present.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	st := newLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "doomed.pdf", strings.NewReader("data"), "application/pdf"))
	require.NoError(t, st.Delete(ctx, "doomed.pdf"))

	// Повторное удаление не является ошибкой
	require.NoError(t, st.Delete(ctx, "doomed.pdf"))

	exists, err := st.Exists(ctx, "doomed.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewStorage_UnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := storage.NewStorage(storage.Config{Type: "ftp"})
	require.Error(t, err)
}
