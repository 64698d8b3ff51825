package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCode(t *testing.T) {
	exitErr := &domain.ExitError{Command: "meson compile -C builddir", Code: 2}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"exit error", exitErr, 2},
		{"wrapped by zerr", zerr.With(zerr.Wrap(exitErr, "command failed"), "exit_code", 2), 2},
		{"joined with sentinel", errors.Join(domain.ErrCompileFailed, zerr.Wrap(exitErr, "command failed")), 2},
		{"signal", &domain.ExitError{Command: "meson", Code: -1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCode(tt.err))
		})
	}
}

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "meson: exit status 3", (&domain.ExitError{Command: "meson", Code: 3}).Error())
	assert.Equal(t, "docker: terminated", (&domain.ExitError{Command: "docker", Code: -1}).Error())
}
