package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/lumphrey/er-coop-installer/core"
	"github.com/lumphrey/er-coop-installer/platform"
)

func listProfiles(pm core.ProfileManager) {
	profiles := pm.GetProfileMap()
	for _, name := range pm.Names() {
		marker := " "
		if name == pm.DefaultProfile() {
			marker = "*"
		}
		fmt.Printf("%s %-16s %s (%s)\n", marker, name, profiles[name].DisplayName, profiles[name].ModDir)
	}
}

func main() {
	ops := &core.Options{}
	_, err := flags.Parse(ops)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	core.InitLogging(os.Stdout, ops.Verbose)

	pm, err := core.MakeProfileManager(afero.NewOsFs(), ops.UserOverride)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load install profiles")
	}

	if ops.ListProfiles {
		listProfiles(pm)
		return
	}

	result, err := core.RequestInstall(ops, pm)
	if err != nil {
		log.Fatal().Err(err).Msg("Install failed")
	}

	if result.DryRun {
		return
	}

	log.Info().
		Str("game", result.GamePath).
		Str("mod", result.ModPath).
		Str("shortcut", result.LinkPath).
		Msg("Install complete")

	if !ops.NoReveal {
		if err := platform.RevealFolder(result.LinkFolder); err != nil {
			log.Warn().Err(err).Str("path", result.LinkFolder).Msg("Could not open shortcut folder")
		}
	}
}
