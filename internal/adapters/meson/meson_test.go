package meson_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonci/internal/adapters/meson"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBuildSystem_Setup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	mockExecutor.EXPECT().Run(gomock.Any(), domain.NewCommand(
		"meson", "setup", "builddir", "--default-library=both", "--cross-file=cross.txt",
	)).Return(nil)

	bs := meson.NewBuildSystem(mockExecutor)
	require.NoError(t, bs.Setup(context.Background(), []string{"--default-library=both", "--cross-file=cross.txt"}))
}

func TestBuildSystem_Compile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	mockExecutor.EXPECT().Run(gomock.Any(), domain.NewCommand("meson", "compile", "-C", "builddir")).Return(nil)

	require.NoError(t, meson.NewBuildSystem(mockExecutor).Compile(context.Background()))
}

func TestBuildSystem_Test(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	failure := &domain.ExitError{Command: "meson", Code: 1}
	mockExecutor.EXPECT().Run(gomock.Any(), domain.NewCommand("meson", "test", "-C", "builddir", "--no-rebuild")).
		Return(failure)

	err := meson.NewBuildSystem(mockExecutor).Test(context.Background())
	assert.True(t, errors.Is(err, failure))
}
