package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	profiles := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(profiles, []byte(`
profiles:
  - name: sim
    hosts: [or1k-elf]
    kind: container
    image: quay.io/moxielogic/libffi-ci-${HOST}
`), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         []string{"version"},
			expectedExit: 0,
		},
		{
			name:         "plan",
			args:         []string{"plan", "--host", "moxie-elf"},
			expectedExit: 0,
		},
		{
			name:         "dry run container",
			args:         []string{"run", "--dry-run", "--host", "or1k-elf", "--profiles", profiles},
			expectedExit: 0,
		},
		{
			name:         "missing profile file",
			args:         []string{"plan", "--profiles", filepath.Join(t.TempDir(), "missing.yaml")},
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         []string{"deploy"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
