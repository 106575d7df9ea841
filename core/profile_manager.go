package core

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

//go:embed profiles.toml
var defaultProfiles []byte

// Profile describes one installable variant of the mod.
type Profile struct {
	Name        string `toml:"-"`
	DisplayName string `toml:"display_name"`
	GameFolder  string `toml:"game_folder"`
	ModDir      string `toml:"mod_dir"`
	PayloadDir  string `toml:"payload_dir"`
	Launcher    string `toml:"launcher"`
	LinkFolder  string `toml:"link_folder"`
	LinkName    string `toml:"link_name"`
	SteamRoot   string `toml:"steam_root"`
}

type profileFile struct {
	Default  string              `toml:"default"`
	Profiles map[string]*Profile `toml:"profiles"`
}

func (p *Profile) merge(override *Profile) {
	for _, field := range []struct {
		dst *string
		src string
	}{
		{&p.DisplayName, override.DisplayName},
		{&p.GameFolder, override.GameFolder},
		{&p.ModDir, override.ModDir},
		{&p.PayloadDir, override.PayloadDir},
		{&p.Launcher, override.Launcher},
		{&p.LinkFolder, override.LinkFolder},
		{&p.LinkName, override.LinkName},
		{&p.SteamRoot, override.SteamRoot},
	} {
		if field.src != "" {
			*field.dst = field.src
		}
	}
}

func (p *Profile) Validate() error {
	required := map[string]string{
		"game_folder": p.GameFolder,
		"mod_dir":     p.ModDir,
		"payload_dir": p.PayloadDir,
		"launcher":    p.Launcher,
		"link_folder": p.LinkFolder,
		"link_name":   p.LinkName,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("profile %s: %s is required", p.Name, key)
		}
	}

	for key, value := range map[string]string{
		"game_folder": p.GameFolder,
		"mod_dir":     p.ModDir,
		"launcher":    p.Launcher,
		"link_name":   p.LinkName,
	} {
		if value != filepath.Base(value) || value == "." || value == ".." {
			return fmt.Errorf("profile %s: %s must be a plain name, got %q", p.Name, key, value)
		}
	}
	return nil
}

type ProfileManager interface {
	ApplyUserOverrides() error
	GetProfileMap() map[string]*Profile
	GetProfile(name string) (*Profile, error)
	DefaultProfile() string
	Names() []string
	GetUserOverrideLocation() string
}

type FsProfileManager struct {
	fs                   afero.Fs
	profiles             map[string]*Profile
	defaultProfile       string
	userOverrideLocation string
}

func GetDefaultUserOverridePath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "profiles.toml")
}

func MakeDefaultProfileManager(fs afero.Fs) (ProfileManager, error) {
	return MakeProfileManager(fs, "")
}

// MakeProfileManager loads the embedded profiles and layers the user override
// file on top. A missing override file is fine; a broken one is not.
func MakeProfileManager(fs afero.Fs, userOverride string) (ProfileManager, error) {
	if userOverride == "" {
		userOverride = GetDefaultUserOverridePath()
	}

	pm := &FsProfileManager{
		fs:                   fs,
		profiles:             make(map[string]*Profile),
		userOverrideLocation: userOverride,
	}

	if err := pm.load(defaultProfiles); err != nil {
		return nil, fmt.Errorf("embedded profiles: %w", err)
	}

	if err := pm.ApplyUserOverrides(); err != nil {
		return nil, err
	}

	return pm, nil
}

func (pm *FsProfileManager) load(content []byte) error {
	var parsed profileFile
	if err := toml.Unmarshal(content, &parsed); err != nil {
		return err
	}

	if parsed.Default != "" {
		pm.defaultProfile = parsed.Default
	}

	for name, profile := range parsed.Profiles {
		if profile == nil {
			continue
		}
		existing, ok := pm.profiles[name]
		if !ok {
			profile.Name = name
			pm.profiles[name] = profile
			continue
		}
		existing.merge(profile)
	}
	return nil
}

func (pm *FsProfileManager) ApplyUserOverrides() error {
	logger := GetLogger("profiles")
	fileName := pm.GetUserOverrideLocation()
	content, err := afero.ReadFile(pm.fs, fileName)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug().Str("path", fileName).Msg("No user profile overrides")
		return nil
	}
	if err != nil {
		return err
	}

	if err := pm.load(content); err != nil {
		return fmt.Errorf("user profile overrides %s: %w", fileName, err)
	}
	logger.Info().Str("path", fileName).Msg("Applied user profile overrides")
	return nil
}

func (pm *FsProfileManager) GetUserOverrideLocation() string {
	if pm.userOverrideLocation == "" {
		pm.userOverrideLocation = GetDefaultUserOverridePath()
	}
	return pm.userOverrideLocation
}

func (pm *FsProfileManager) GetProfileMap() map[string]*Profile {
	return pm.profiles
}

func (pm *FsProfileManager) DefaultProfile() string {
	return pm.defaultProfile
}

func (pm *FsProfileManager) Names() []string {
	names := make([]string, 0, len(pm.profiles))
	for name := range pm.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetProfile returns a validated copy of the named profile. An empty name
// selects the default profile.
func (pm *FsProfileManager) GetProfile(name string) (*Profile, error) {
	if name == "" {
		name = pm.defaultProfile
	}

	profile, ok := pm.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (available: %v)", name, pm.Names())
	}

	result := *profile
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}
