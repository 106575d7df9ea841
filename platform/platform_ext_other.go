//go:build !windows && !linux && !darwin

package platform

import "os/exec"

const fileBrowser = "xdg-open"

func StripWindow(cmd *exec.Cmd) {}

func GetSteamPath() (string, error) {
	return "", ErrSteamNotFound
}
