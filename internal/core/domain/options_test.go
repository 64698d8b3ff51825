package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mesonci/internal/core/domain"
)

func TestMesonOptions(t *testing.T) {
	opts := domain.NewMesonOptions().
		DefaultLibrary(domain.LibraryStatic).
		CrossFile(".ci/meson-cross-moxie.txt").
		Define("tests_optimizations", "-O0,-O2").
		Append("--buildtype=release")

	assert.Equal(t, []string{
		"--default-library=both",
		"--default-library=static",
		"--cross-file=.ci/meson-cross-moxie.txt",
		"-Dtests_optimizations=-O0,-O2",
		"--buildtype=release",
	}, opts.Args())
}

func TestMesonOptions_ArgsReturnsCopy(t *testing.T) {
	opts := domain.NewMesonOptions()

	args := opts.Args()
	args[0] = "mutated"

	assert.Equal(t, []string{"--default-library=both"}, opts.Args())
}
