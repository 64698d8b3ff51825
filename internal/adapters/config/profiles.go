package config

import (
	_ "embed"
	"os"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// UserProfilesPath is the profile override location relative to the XDG config directories.
const UserProfilesPath = "mesonci/profiles.yaml"

//go:embed defaults.yaml
var defaultProfiles []byte

// ProfileLoader implements ports.ProfileLoader.
// It combines a user profile file with the built-in table.
type ProfileLoader struct {
	fs     afero.Fs
	search func(relPath string) (string, error)
}

// NewProfileLoader creates a ProfileLoader using the OS filesystem and XDG lookup.
func NewProfileLoader() *ProfileLoader {
	return NewProfileLoaderWith(afero.NewOsFs(), xdg.SearchConfigFile)
}

// NewProfileLoaderWith creates a ProfileLoader with an explicit filesystem and
// user file lookup. A nil search disables the lookup.
func NewProfileLoaderWith(fs afero.Fs, search func(relPath string) (string, error)) *ProfileLoader {
	return &ProfileLoader{fs: fs, search: search}
}

// Load returns the profile table. Profiles from path, or from the XDG user file
// when path is empty, come before the built-in ones.
func (l *ProfileLoader) Load(path string) (domain.Profiles, error) {
	builtin, err := Parse(defaultProfiles)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse built-in profiles")
	}

	if path == "" && l.search != nil {
		if found, err := l.search(UserProfilesPath); err == nil {
			path = found
		}
	}
	if path == "" {
		return builtin, nil
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(err, "profile file not found"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read profile file"), "path", path)
	}

	user, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return append(user, builtin...), nil
}

// Parse decodes a profile file.
func Parse(data []byte) (domain.Profiles, error) {
	var file ProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse profile file")
	}

	profiles := make(domain.Profiles, 0, len(file.Profiles))
	for i, dto := range file.Profiles {
		p, err := dto.toDomain()
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (dto ProfileDTO) toDomain() (domain.Profile, error) {
	if dto.Name == "" {
		return domain.Profile{}, zerr.Wrap(domain.ErrInvalidProfile, "profile name is required")
	}
	if len(dto.Hosts) == 0 && dto.Contains == "" {
		return domain.Profile{}, zerr.With(zerr.Wrap(domain.ErrInvalidProfile, "profile matches no host"), "profile", dto.Name)
	}

	kind := domain.ProfileKind(dto.Kind)
	switch kind {
	case "":
		kind = domain.KindNative
	case domain.KindNative, domain.KindCross, domain.KindContainer:
	default:
		return domain.Profile{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownProfileKind, "cannot load profile"), "profile", dto.Name), "kind", dto.Kind)
	}

	p := domain.Profile{
		Name:          dto.Name,
		Match:         domain.Match{Hosts: dto.Hosts, Contains: dto.Contains},
		Kind:          kind,
		Options:       dto.Options,
		CrossTemplate: dto.CrossTemplate,
		CrossOutput:   dto.CrossOutput,
		SkipTests:     dto.SkipTests,
		Image:         dto.Image,
		GCCOptions:    dto.GCCOptions,
	}
	for _, e := range dto.Env {
		p.Env = append(p.Env, domain.EnvVar{Name: e.Name, Value: e.Value})
	}
	return p, nil
}
