package config

import (
	_ "embed"
	"os"
	"slices"
	"strings"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var builtinProfiles []byte

type profileFile struct {
	Profiles []v1.AssetProfile `yaml:"profiles"`
}

// Profiles holds asset profiles by name.
type Profiles map[string]v1.AssetProfile

// LoadProfiles returns the built-in profiles merged with the profiles in path.
// An empty path returns the built-in profiles only. Every profile is validated.
func LoadProfiles(path string) (Profiles, error) {
	profiles := Profiles{}
	if err := profiles.merge(builtinProfiles); err != nil {
		return nil, errors.NewConfigurationFault("invalid built-in profiles", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewConfigurationFault("failed to read profiles file "+path, err)
		}
		if err := profiles.merge(data); err != nil {
			return nil, errors.NewConfigurationFault("invalid profiles file "+path, err)
		}
	}

	for name, p := range profiles {
		p = p.WithDefaults()
		if err := p.Validate(); err != nil {
			if baseErr, ok := err.(*errors.BaseError); ok {
				baseErr.PrependFields(name + ".")
			}
			return nil, errors.NewConfigurationFault("invalid profile "+name, err)
		}
		profiles[name] = p
	}

	return profiles, nil
}

func (p Profiles) merge(data []byte) error {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	for _, profile := range file.Profiles {
		p[strings.ToLower(profile.Name)] = profile
	}
	return nil
}

// Get returns the profile registered under name.
func (p Profiles) Get(name string) (v1.AssetProfile, error) {
	profile, ok := p[strings.ToLower(name)]
	if !ok {
		return v1.AssetProfile{}, errors.NewConfigurationFault("unknown asset profile "+name, nil)
	}
	return profile, nil
}

// BySymbol returns the profile trading symbol, or the fallback profile when none does.
func (p Profiles) BySymbol(symbol, fallback string) (v1.AssetProfile, error) {
	for _, name := range p.Names() {
		if p[name].Symbol == symbol {
			return p[name], nil
		}
	}
	return p.Get(fallback)
}

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
