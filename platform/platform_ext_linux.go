//go:build linux

package platform

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

const fileBrowser = "xdg-open"

func StripWindow(cmd *exec.Cmd) {}

func steamCandidates(home string, dataHome string) []string {
	candidates := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
		filepath.Join(home, "snap", "steam", "common", ".local", "share", "Steam"),
	}
	if dataHome != "" {
		candidates = append(candidates, filepath.Join(dataHome, "Steam"))
	}
	return candidates
}

func GetSteamPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return firstExistingDir(afero.NewOsFs(), steamCandidates(home, os.Getenv("XDG_DATA_HOME")))
}
