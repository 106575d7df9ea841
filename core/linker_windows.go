//go:build windows

package core

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/lumphrey/er-coop-installer/platform"
	"github.com/spf13/afero"
)

// ShellLinker writes .lnk files through the WScript.Shell COM object.
type ShellLinker struct{}

func NewLinker(fs afero.Fs, name string) Linker {
	return &ShellLinker{}
}

func (l *ShellLinker) Ext() string {
	return ".lnk"
}

func (l *ShellLinker) CreateLink(linkPath, target, workDir string) error {
	script := fmt.Sprintf(`$WshShell = New-Object -ComObject WScript.Shell
$Shortcut = $WshShell.CreateShortcut(%s)
$Shortcut.TargetPath = %s
$Shortcut.WorkingDirectory = %s
$Shortcut.Save()`,
		quotePowerShell(linkPath), quotePowerShell(target), quotePowerShell(workDir))

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command", script)
	platform.StripWindow(cmd)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("powershell: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func quotePowerShell(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
