package core

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/sanity-io/litter"
	"github.com/spf13/afero"

	"github.com/lumphrey/er-coop-installer/platform"
)

const APP_NAME = "er-coop-installer"

type Options struct {
	Profile      string `short:"p" long:"profile" description:"Install profile to use. Defaults to the profile marked as default in the profile file"`
	SteamRoot    string `short:"r" long:"steam-root" description:"Steam installation directory holding steamapps/libraryfolders.vdf"`
	PayloadDir   string `short:"d" long:"payload-dir" description:"Directory containing the mod files to install"`
	UserOverride string `short:"o" long:"user-override" description:"--user-override <FILE> Provide location for a custom profile override TOML file"`
	DryRun       bool   `short:"n" long:"dry-run" description:"Resolve paths and report what would be installed without writing anything"`
	NoReveal     bool   `long:"no-reveal" description:"Do not open the shortcut folder when done"`
	Verbose      bool   `short:"v" long:"verbose" description:"Enable verbose logging"`
	ListProfiles bool   `long:"list-profiles" description:"Print the available install profiles and exit"`
}

func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// ResolveSteamRoot picks the Steam installation to search. Explicit settings
// win over discovery; DefaultSteamRoot is the last resort.
func ResolveSteamRoot(explicit string, profileRoot string, discover func() (string, error)) string {
	logger := GetLogger("steam")

	for _, root := range []string{explicit, profileRoot} {
		if root != "" {
			return expandPath(root)
		}
	}

	if discover != nil {
		root, err := discover()
		if err == nil && root != "" {
			logger.Debug().Str("path", root).Msg("Discovered steam installation")
			return root
		}
		logger.Debug().Err(err).Msg("Steam discovery failed, using default location")
	}

	return platform.DefaultSteamRoot
}

// BuildPipeline wires the install stages for a profile against the real
// filesystem.
func BuildPipeline(ops *Options, profile *Profile) (*Pipeline, error) {
	logger := GetLogger("core")
	fs := afero.NewOsFs()

	logger.Debug().Func(func(e *zerolog.Event) {
		e.Str("profile", litter.Sdump(profile))
	}).Msg("Using profile")

	payloadDir := profile.PayloadDir
	if ops.PayloadDir != "" {
		payloadDir = expandPath(ops.PayloadDir)
	}
	payloadPath, err := PayloadPath(fs, payloadDir)
	if err != nil {
		return nil, err
	}

	steamRoot := ResolveSteamRoot(ops.SteamRoot, profile.SteamRoot, platform.GetSteamPath)
	logger.Info().Str("steam", steamRoot).Str("profile", profile.Name).Msg("Starting install")

	return &Pipeline{
		Resolver: &GamePathResolver{
			Fs:         fs,
			SteamRoot:  steamRoot,
			GameFolder: profile.GameFolder,
		},
		Installer: &ModInstaller{
			Src:        fs,
			Dst:        fs,
			PayloadDir: payloadPath,
			ModDir:     profile.ModDir,
		},
		Shortcuts: &ShortcutCreator{
			Fs:       fs,
			Linker:   NewLinker(fs, profile.DisplayName),
			Folder:   filepath.Join(xdg.DataHome, profile.LinkFolder),
			LinkName: profile.LinkName,
			Launcher: profile.Launcher,
		},
		DryRun: ops.DryRun,
	}, nil
}

// RequestInstall runs a full install for the profile selected in ops.
func RequestInstall(ops *Options, pm ProfileManager) (*Result, error) {
	profile, err := pm.GetProfile(ops.Profile)
	if err != nil {
		return nil, err
	}

	pipeline, err := BuildPipeline(ops, profile)
	if err != nil {
		return nil, err
	}

	return pipeline.Run()
}
