//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows/registry"
)

const fileBrowser = "explorer"

func StripWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}

// GetSteamPath reads the Steam client location the launcher records in the
// current user's registry hive.
func GetSteamPath() (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSteamNotFound, err)
	}
	defer key.Close()

	steamPath, _, err := key.GetStringValue("SteamPath")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSteamNotFound, err)
	}
	return strings.ReplaceAll(steamPath, "/", `\`), nil
}
