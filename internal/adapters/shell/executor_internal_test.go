package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	sys := []string{"PATH=/usr/bin", "HOME=/root", "BROKEN"}
	cmd := []string{"CC=m68k-linux-gnu-gcc-8", "PATH=/opt/bin"}

	assert.Equal(t, []string{"PATH=/opt/bin", "HOME=/root", "CC=m68k-linux-gnu-gcc-8"}, resolveEnvironment(sys, cmd))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestCopyLines_DrainsAfterWriteError(t *testing.T) {
	r := strings.NewReader("a\nb\nc\n")

	err := copyLines(failingWriter{}, r)

	require.Error(t, err)
	assert.Equal(t, 0, r.Len())
}
