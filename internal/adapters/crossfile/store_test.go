package crossfile_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonci/internal/adapters/crossfile"
	"go.trai.ch/mesonci/internal/core/domain"
)

func TestStore_ReadTemplate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".ci/meson-cross-android.txt", []byte("[host_machine]\ncpu = '@CPU@'\n"), 0o644))

	content, err := crossfile.NewStoreWithFs(fs).ReadTemplate(".ci/meson-cross-android.txt")

	require.NoError(t, err)
	assert.Equal(t, "[host_machine]\ncpu = '@CPU@'\n", content)
}

func TestStore_ReadTemplateMissing(t *testing.T) {
	_, err := crossfile.NewStoreWithFs(afero.NewMemMapFs()).ReadTemplate(".ci/missing.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestStore_WriteAndRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := crossfile.NewStoreWithFs(fs)

	require.NoError(t, store.Write("out/cross.txt", "[binaries]\n"))

	data, err := afero.ReadFile(fs, "out/cross.txt")
	require.NoError(t, err)
	assert.Equal(t, "[binaries]\n", string(data))

	require.NoError(t, store.Remove("out/cross.txt"))
	exists, err := afero.Exists(fs, "out/cross.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_RemoveMissing(t *testing.T) {
	assert.NoError(t, crossfile.NewStoreWithFs(afero.NewMemMapFs()).Remove("cross.txt"))
}

func TestStore_WriteReadOnly(t *testing.T) {
	store := crossfile.NewStoreWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	assert.Error(t, store.Write("cross.txt", "x"))
}
