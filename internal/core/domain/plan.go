package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Mode is how a plan is executed.
type Mode string

const (
	// ModeNative runs Meson in the current process environment.
	ModeNative Mode = "native"
	// ModeContainer delegates to a container image.
	ModeContainer Mode = "container"
)

// Plan is the fully decided outcome of target selection.
// Executing a plan needs no further access to the environment.
type Plan struct {
	Host              string               `yaml:"host"`
	Profile           string               `yaml:"profile"`
	Mode              Mode                 `yaml:"mode"`
	Options           []string             `yaml:"options,omitempty"`
	SkipTests         bool                 `yaml:"skip_tests"`
	IgnoreTestsErrors bool                 `yaml:"ignore_tests_errors"`
	CrossFile         *CrossFileSpec       `yaml:"cross_file,omitempty"`
	Container         *ContainerInvocation `yaml:"container,omitempty"`
}

// Fingerprint returns a stable digest of everything that influences the build.
func (p *Plan) Fingerprint() string {
	d := xxhash.New()
	write := func(fields ...string) {
		for _, f := range fields {
			_, _ = d.WriteString(f)
			_, _ = d.Write([]byte{0})
		}
	}

	write(p.Host, p.Profile, string(p.Mode))
	write(p.Options...)
	write(strconv.FormatBool(p.SkipTests), strconv.FormatBool(p.IgnoreTestsErrors))
	if p.CrossFile != nil {
		v := p.CrossFile.Vars
		write(p.CrossFile.Template, p.CrossFile.Output, v.Host, v.CPU, v.CPUFamily, v.AndroidNDKRoot, v.AndroidAPILevel)
	}
	if p.Container != nil {
		write(p.Container.Runtime)
		write(p.Container.Args()...)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

// Summary is a one-line description for logs.
func (p *Plan) Summary() string {
	var b strings.Builder
	b.WriteString("host=")
	if p.Host == "" {
		b.WriteString("<native>")
	} else {
		b.WriteString(p.Host)
	}
	b.WriteString(" profile=" + p.Profile + " mode=" + string(p.Mode))
	if p.Container != nil {
		b.WriteString(" image=" + p.Container.Image)
	}
	if p.SkipTests {
		b.WriteString(" tests=skipped")
	}
	return b.String()
}
