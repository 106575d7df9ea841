package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Linker creates an OS-level shortcut at linkPath that launches target from
// workDir. Existing links at linkPath are replaced.
type Linker interface {
	CreateLink(linkPath, target, workDir string) error
	Ext() string
}

type ShortcutCreator struct {
	Fs       afero.Fs
	Linker   Linker
	Folder   string
	LinkName string
	Launcher string
}

func (s *ShortcutCreator) LinkPath() string {
	return filepath.Join(s.Folder, s.LinkName+s.Linker.Ext())
}

func (s *ShortcutCreator) LauncherPath(modDir string) string {
	return filepath.Join(modDir, s.Launcher)
}

// Create links the mod launcher and returns the folder holding the link.
func (s *ShortcutCreator) Create(modDir string) (string, error) {
	logger := GetLogger("shortcut")

	if err := s.Fs.MkdirAll(s.Folder, os.ModePerm); err != nil {
		return "", fmt.Errorf("create shortcut folder: %w", err)
	}

	linkPath := s.LinkPath()
	target := s.LauncherPath(modDir)
	if err := s.Linker.CreateLink(linkPath, target, modDir); err != nil {
		return "", fmt.Errorf("create shortcut %s: %w", linkPath, err)
	}

	logger.Info().Str("link", linkPath).Str("target", target).Msg("Shortcut created")
	return s.Folder, nil
}
