package config

// ProfileFile represents the structure of a profiles.yaml file.
type ProfileFile struct {
	Version  string       `yaml:"version"`
	Profiles []ProfileDTO `yaml:"profiles"`
}

// ProfileDTO represents a target profile definition.
type ProfileDTO struct {
	Name     string   `yaml:"name"`
	Hosts    []string `yaml:"hosts"`
	Contains string   `yaml:"contains"`
	Kind     string   `yaml:"kind"`

	Options   []string `yaml:"options"`
	SkipTests bool     `yaml:"skipTests"`

	CrossTemplate string `yaml:"crossTemplate"`
	CrossOutput   string `yaml:"crossOutput"`

	Image      string            `yaml:"image"`
	Env        []EnvDTO          `yaml:"env"`
	GCCOptions map[string]string `yaml:"gccOptions"`
}

// EnvDTO is a container environment entry. Entries keep their file order.
type EnvDTO struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}
