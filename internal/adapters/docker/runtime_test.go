package docker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonci/internal/adapters/docker"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testInvocation() *domain.ContainerInvocation {
	return &domain.ContainerInvocation{
		Image: "quay.io/moxielogic/libffi-ci-bfin-elf",
		Mount: "/src/libffi",
		Env: []domain.EnvVar{
			{Name: "CC", Value: "bfin-elf-gcc -msim"},
			{Name: "QEMU_LD_PREFIX", Value: "/usr/bfin-elf"},
		},
		Command: []string{"/opt/.ci/mesonci", "run"},
	}
}

func TestRuntime_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	want := domain.NewCommand("docker",
		"run", "--rm", "-t",
		"-v", "/src/libffi:/opt",
		"--workdir", "/opt",
		"-e", "CC=bfin-elf-gcc -msim",
		"-e", "QEMU_LD_PREFIX=/usr/bfin-elf",
		"quay.io/moxielogic/libffi-ci-bfin-elf",
		"/opt/.ci/mesonci", "run",
	)
	want.Quiet = true
	mockLogger.EXPECT().Info("Run in docker: " + want.String())
	mockExecutor.EXPECT().Run(gomock.Any(), want).Return(nil)

	require.NoError(t, docker.NewRuntime(mockExecutor, mockLogger).Run(context.Background(), testInvocation()))
}

func TestRuntime_CustomBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	inv := testInvocation()
	inv.Runtime = "podman"

	mockLogger.EXPECT().Info(gomock.Any())
	mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) error {
			assert.Equal(t, "podman", cmd.Name)
			assert.Equal(t, inv.Args(), cmd.Args)
			return nil
		})

	require.NoError(t, docker.NewRuntime(mockExecutor, mockLogger).Run(context.Background(), inv))
}

func TestRuntime_PropagatesExitStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info(gomock.Any())
	mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.ExitError{Command: "docker", Code: 3})

	err := docker.NewRuntime(mockExecutor, mockLogger).Run(context.Background(), testInvocation())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContainerFailed))
	assert.Equal(t, 3, domain.ExitCode(err))
}
