package platform

import (
	"errors"
	"os/exec"

	"github.com/spf13/afero"
)

// DefaultSteamRoot is where the Steam client installs itself on Windows.
const DefaultSteamRoot = `C:\Program Files (x86)\Steam`

var ErrSteamNotFound = errors.New("steam installation not found")

func firstExistingDir(fs afero.Fs, candidates []string) (string, error) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if ok, _ := afero.DirExists(fs, candidate); ok {
			return candidate, nil
		}
	}
	return "", ErrSteamNotFound
}

var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// RevealFolder opens the OS file browser at dir without waiting for it.
func RevealFolder(dir string) error {
	return startCommand(fileBrowser, dir)
}
