package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrSetupFailed is returned when the Meson setup step fails.
	ErrSetupFailed = zerr.New("meson setup failed")

	// ErrCompileFailed is returned when the Meson compile step fails.
	ErrCompileFailed = zerr.New("meson compile failed")

	// ErrTestsFailed is returned when the test suite fails and failures are not tolerated.
	ErrTestsFailed = zerr.New("meson test failed")

	// ErrContainerFailed is returned when a delegated container build fails.
	ErrContainerFailed = zerr.New("container build failed")

	// ErrInstallFailed is returned when the build tools cannot be installed.
	ErrInstallFailed = zerr.New("tool installation failed")

	// ErrUnknownProfileKind is returned when a profile declares an unsupported kind.
	ErrUnknownProfileKind = zerr.New("unknown profile kind")

	// ErrInvalidProfile is returned when a profile is missing required fields.
	ErrInvalidProfile = zerr.New("invalid profile")

	// ErrTemplateNotFound is returned when a cross-file template does not exist.
	ErrTemplateNotFound = zerr.New("cross file template not found")
)

// ExitError reports that an external command exited unsuccessfully.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("%s: terminated", e.Command)
	}
	return fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
}

// ExitCode maps err to a process exit status.
// A nil error is 0, an ExitError anywhere in the chain yields its code, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
