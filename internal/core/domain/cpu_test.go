package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mesonci/internal/core/domain"
)

func TestCPUFamily(t *testing.T) {
	tests := []struct {
		cpu  string
		want string
	}{
		{"i386", "x86"},
		{"i486", "x86"},
		{"i686", "x86"},
		{"ix86", "x86"},
		{"armv7a", "arm"},
		{"armv7", "armv7"},
		{"aarch64", "aarch64"},
		{"x86_64", "x86_64"},
		{"mi686", "mi686"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.cpu, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CPUFamily(tt.cpu))
		})
	}
}

func TestHostCPU(t *testing.T) {
	assert.Equal(t, "armv7a", domain.HostCPU("armv7a-linux-androideabi"))
	assert.Equal(t, "moxie", domain.HostCPU("moxie-elf"))
	assert.Equal(t, "x86_64", domain.HostCPU("x86_64"))
	assert.Empty(t, domain.HostCPU(""))
}
