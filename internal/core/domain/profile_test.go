package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonci/internal/core/domain"
)

func TestProfiles_Select(t *testing.T) {
	profiles := domain.Profiles{
		{Name: "moxie", Match: domain.Match{Hosts: []string{"moxie-elf"}}},
		{Name: "android", Match: domain.Match{Contains: "android"}},
		{Name: "catch-android-too", Match: domain.Match{Contains: "linux"}},
	}

	p, ok := profiles.Select("moxie-elf")
	require.True(t, ok)
	assert.Equal(t, "moxie", p.Name)

	p, ok = profiles.Select("aarch64-linux-android")
	require.True(t, ok)
	assert.Equal(t, "android", p.Name, "first match wins")

	_, ok = profiles.Select("moxie-elf-extra")
	assert.False(t, ok)

	_, ok = profiles.Select("")
	assert.False(t, ok)
}
