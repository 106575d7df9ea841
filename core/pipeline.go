package core

import (
	"fmt"
)

type Stage string

const (
	StageResolve  Stage = "resolve"
	StageInstall  Stage = "install"
	StageShortcut Stage = "shortcut"
)

// StageError marks which step of the install failed. Every stage failure ends
// the run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Result struct {
	GamePath   string
	ModPath    string
	LinkPath   string
	LinkFolder string
	DryRun     bool
}

type Pipeline struct {
	Resolver  *GamePathResolver
	Installer *ModInstaller
	Shortcuts *ShortcutCreator
	DryRun    bool
}

// Run resolves the game, installs the mod and creates the shortcut, in that
// order. Nothing is written unless the game was found.
func (p *Pipeline) Run() (*Result, error) {
	logger := GetLogger("pipeline")

	gamePath, err := p.Resolver.Resolve()
	if err != nil {
		return nil, &StageError{Stage: StageResolve, Err: err}
	}
	logger.Info().Str("path", gamePath).Msg("Game path resolved")

	result := &Result{
		GamePath: gamePath,
		DryRun:   p.DryRun,
	}

	if p.DryRun {
		result.ModPath = ModInstallPath(gamePath, p.Installer.ModDir)
		result.LinkPath = p.Shortcuts.LinkPath()
		result.LinkFolder = p.Shortcuts.Folder
		logger.Info().
			Str("payload", p.Installer.PayloadDir).
			Str("destination", result.ModPath).
			Str("link", result.LinkPath).
			Str("target", p.Shortcuts.LauncherPath(result.ModPath)).
			Msg("Dry run, nothing written")
		return result, nil
	}

	modPath, err := p.Installer.Install(gamePath)
	if err != nil {
		return nil, &StageError{Stage: StageInstall, Err: err}
	}
	result.ModPath = modPath

	folder, err := p.Shortcuts.Create(modPath)
	if err != nil {
		return nil, &StageError{Stage: StageShortcut, Err: err}
	}
	result.LinkFolder = folder
	result.LinkPath = p.Shortcuts.LinkPath()

	return result, nil
}
