package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mesonci/internal/core/domain"
)

func TestCommand_Argv(t *testing.T) {
	cmd := domain.NewCommand("meson", "compile", "-C", "builddir")

	assert.Equal(t, []string{"meson", "compile", "-C", "builddir"}, cmd.Argv())
	assert.Equal(t, "meson compile -C builddir", cmd.String())
}

func TestCommand_StringQuotesSpaces(t *testing.T) {
	cmd := domain.NewCommand("docker", "run", "-e", "CC=bfin-elf-gcc -msim")

	assert.Equal(t, "docker run -e 'CC=bfin-elf-gcc -msim'", cmd.String())
}
