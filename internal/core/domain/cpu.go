package domain

import (
	"regexp"
	"strings"
)

var i86Pattern = regexp.MustCompile(`^i.86`)

// HostCPU returns the CPU component of a target triple.
func HostCPU(host string) string {
	cpu, _, _ := strings.Cut(host, "-")
	return cpu
}

// CPUFamily maps a Meson cpu name to its cpu_family.
// i386 through i686 are "x86" and armv7a is "arm"; everything else is its own family.
func CPUFamily(cpu string) string {
	switch {
	case i86Pattern.MatchString(cpu):
		return "x86"
	case cpu == "armv7a":
		return "arm"
	default:
		return cpu
	}
}
