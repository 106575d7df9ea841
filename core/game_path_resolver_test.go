package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lumphrey/er-coop-installer/core"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gameFolder = "ELDEN RING"

func libraryList(n int) []string {
	libraries := []string{}
	for i := 1; i <= n; i++ {
		libraries = append(libraries, fmt.Sprintf("/libraries/lib%d", i))
	}
	return libraries
}

func installGame(t *testing.T, fs afero.Fs, library string) string {
	t.Helper()
	path := core.GameInstallPath(library, gameFolder)
	require.NoError(t, fs.MkdirAll(path, 0755))
	return path
}

func TestFindGamePath_SingleMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	libraries := libraryList(3)
	expected := installGame(t, fs, libraries[2])

	resolver := &core.GamePathResolver{Fs: fs, GameFolder: gameFolder}
	path, err := resolver.FindGamePath(libraries)

	assert.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestFindGamePath_FirstMatchWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	libraries := libraryList(5)
	second := installGame(t, fs, libraries[1])
	installGame(t, fs, libraries[3])

	resolver := &core.GamePathResolver{Fs: fs, GameFolder: gameFolder}
	path, err := resolver.FindGamePath(libraries)

	assert.NoError(t, err)
	assert.Equal(t, second, path)
}

func TestFindGamePath_NoMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	libraries := libraryList(2)
	require.NoError(t, fs.MkdirAll(core.GameInstallPath(libraries[0], "Sekiro"), 0755))

	resolver := &core.GamePathResolver{Fs: fs, GameFolder: gameFolder}
	path, err := resolver.FindGamePath(libraries)

	assert.Empty(t, path)
	assert.True(t, errors.Is(err, core.ErrGameNotFound))
}

func TestFindGamePath_IgnoresPlainFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	libraries := libraryList(2)
	require.NoError(t, afero.WriteFile(fs, core.GameInstallPath(libraries[0], gameFolder), []byte("x"), 0644))
	expected := installGame(t, fs, libraries[1])

	resolver := &core.GamePathResolver{Fs: fs, GameFolder: gameFolder}
	path, err := resolver.FindGamePath(libraries)

	assert.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestResolve_UsesManifestUnderSteamRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, core.LibraryManifestPath("/steam"),
		[]byte(manifestWithPaths("/steam", "/games/steam")), 0644))
	expected := installGame(t, fs, "/games/steam")

	resolver := &core.GamePathResolver{Fs: fs, SteamRoot: "/steam", GameFolder: gameFolder}
	path, err := resolver.Resolve()

	assert.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestResolve_FollowsManifestOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, core.LibraryManifestPath("/steam"), []byte(`"libraryfolders"
{
	"5"
	{
		"path"		"/libraries/listed-first"
	}
	"0"
	{
		"path"		"/libraries/listed-second"
	}
}
`), 0644))
	expected := installGame(t, fs, "/libraries/listed-first")
	installGame(t, fs, "/libraries/listed-second")

	resolver := &core.GamePathResolver{Fs: fs, SteamRoot: "/steam", GameFolder: gameFolder}
	path, err := resolver.Resolve()

	require.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestResolve_MissingManifest(t *testing.T) {
	fs := afero.NewMemMapFs()

	resolver := &core.GamePathResolver{Fs: fs, SteamRoot: "/steam", GameFolder: gameFolder}
	path, err := resolver.Resolve()

	assert.Empty(t, path)
	assert.True(t, errors.Is(err, core.ErrNoLibraries))
	assert.True(t, errors.Is(err, core.ErrManifestNotFound))
}

func TestResolve_EmptyManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, core.LibraryManifestPath("/steam"),
		[]byte(manifestWithPaths()), 0644))

	resolver := &core.GamePathResolver{Fs: fs, SteamRoot: "/steam", GameFolder: gameFolder}
	_, err := resolver.Resolve()

	assert.True(t, errors.Is(err, core.ErrNoLibraries))
	assert.False(t, errors.Is(err, core.ErrGameNotFound))
}
