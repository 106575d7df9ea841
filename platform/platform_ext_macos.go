//go:build darwin

package platform

import (
	"os/exec"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

const fileBrowser = "open"

func StripWindow(cmd *exec.Cmd) {}

func GetSteamPath() (string, error) {
	path, err := homedir.Expand("~/Library/Application Support/Steam")
	if err != nil {
		return "", err
	}
	return firstExistingDir(afero.NewOsFs(), []string{path})
}
