package core

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	ErrNoLibraries  = errors.New("no steam library paths found")
	ErrGameNotFound = errors.New("game not found in any steam library folder")
)

func GameInstallPath(library string, gameFolder string) string {
	return filepath.Join(library, "steamapps", "common", gameFolder)
}

type GamePathResolver struct {
	Fs         afero.Fs
	SteamRoot  string
	GameFolder string
}

// Resolve reads the library manifest under SteamRoot and returns the first
// library directory that contains GameFolder.
func (r *GamePathResolver) Resolve() (string, error) {
	logger := GetLogger("resolver")

	manifestPath := LibraryManifestPath(r.SteamRoot)
	result := LocateLibraries(r.Fs, manifestPath)
	libraries := result.Libraries()
	if len(libraries) == 0 {
		logger.Error().
			Str("manifest", manifestPath).
			Stringer("status", result.Status).
			Msg("No library paths found in library manifest")
		if result.Err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoLibraries, result.Err)
		}
		return "", fmt.Errorf("%w in %s", ErrNoLibraries, manifestPath)
	}

	return r.FindGamePath(libraries)
}

func (r *GamePathResolver) FindGamePath(libraries []string) (string, error) {
	logger := GetLogger("resolver")

	for _, library := range libraries {
		gamePath := GameInstallPath(library, r.GameFolder)
		if stat, err := r.Fs.Stat(gamePath); err == nil && stat.IsDir() {
			logger.Info().Str("path", gamePath).Msg("Found game install")
			return gamePath, nil
		}
		logger.Debug().Str("library", library).Msg("Game not in library")
	}

	logger.Error().Str("game", r.GameFolder).Msg("Game not found in any steam library folder")
	return "", fmt.Errorf("%w: %s", ErrGameNotFound, r.GameFolder)
}
