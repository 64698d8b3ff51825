package meson_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonci/internal/adapters/meson"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogPrinter_Print(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("Printing builddir/meson-logs/meson-log.txt (12 B)").Times(1)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "builddir/meson-logs/meson-log.txt", []byte("setup failed"), 0o644))

	var out bytes.Buffer
	printer := meson.NewLogPrinterWithFs(fs, &out, mockLogger)

	require.NoError(t, printer.Print(domain.SetupLog))
	assert.Equal(t, "::group::==== meson-log.txt ====\nsetup failed\n::endgroup::\n", out.String())
}

func TestLogPrinter_PrintMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var out bytes.Buffer
	printer := meson.NewLogPrinterWithFs(afero.NewMemMapFs(), &out, mockLogger)

	require.NoError(t, printer.Print(domain.TestLog))
	assert.Empty(t, out.String())
}
