package logger_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mesonci/internal/adapters/logger"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("some message")

	assert.Contains(t, buf.String(), "some message")
	assert.Contains(t, buf.String(), "INFO")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "some warning")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "permission denied")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestLogger_ErrorChain(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	err := zerr.Wrap(zerr.Wrap(errors.New("exit status 1"), "command failed"), "meson setup failed")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: meson setup failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "-> command failed")
	assert.Contains(t, out, "-> exit status 1")
}

func TestLogger_ErrorJoinedCauses(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	exit := &domain.ExitError{Command: "docker", Code: 3}
	lg.Error(zerr.With(errors.Join(domain.ErrContainerFailed, exit), "image", "quay.io/moxielogic/libffi-ci-bfin-elf"))

	out := buf.String()
	assert.Contains(t, out, "Error: container build failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "-> docker: exit status 3")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("one")
	lg.SetOutput(&second)
	lg.Info("two")

	assert.True(t, strings.Contains(first.String(), "one"))
	assert.False(t, strings.Contains(first.String(), "two"))
	assert.Contains(t, second.String(), "two")
}

func TestNew(t *testing.T) {
	assert.NotNil(t, logger.New())
}
