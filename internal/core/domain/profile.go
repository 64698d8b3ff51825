package domain

import "strings"

// ProfileKind selects how a profile is built.
type ProfileKind string

const (
	// KindNative builds in-process, optionally with a static cross file.
	KindNative ProfileKind = "native"
	// KindCross builds in-process with a descriptor rendered from a template.
	KindCross ProfileKind = "cross"
	// KindContainer delegates the whole run to a container image.
	KindContainer ProfileKind = "container"
)

// DefaultProfileName names the plan used when no profile matches.
const DefaultProfileName = "default"

// Match decides whether a profile applies to a host triple.
type Match struct {
	// Hosts matches any of the listed triples exactly.
	Hosts []string
	// Contains matches triples containing the substring.
	Contains string
}

// Matches reports whether host is selected by m.
func (m Match) Matches(host string) bool {
	for _, h := range m.Hosts {
		if h == host {
			return true
		}
	}
	return m.Contains != "" && strings.Contains(host, m.Contains)
}

// EnvVar is a single container environment entry.
type EnvVar struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Profile describes how one family of targets is built.
type Profile struct {
	Name  string
	Match Match
	Kind  ProfileKind

	// Options are appended to the Meson setup options.
	Options []string
	// CrossTemplate and CrossOutput configure the rendered descriptor of KindCross profiles.
	CrossTemplate string
	CrossOutput   string
	SkipTests     bool

	// Image, Env and GCCOptions configure KindContainer profiles.
	// Image and Env values may reference $HOST and $GCC_OPTIONS.
	Image      string
	Env        []EnvVar
	GCCOptions map[string]string
}

// Profiles is an ordered profile table; the first match wins.
type Profiles []Profile

// Select returns the first profile matching host.
func (p Profiles) Select(host string) (Profile, bool) {
	for _, profile := range p {
		if profile.Match.Matches(host) {
			return profile, true
		}
	}
	return Profile{}, false
}
