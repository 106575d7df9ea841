package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

func ModInstallPath(gameDir string, modDir string) string {
	return filepath.Join(gameDir, "game", modDir)
}

// ModInstaller copies the bundled mod payload into the game tree. Files from
// the payload overwrite files at the same path; anything else already in the
// destination is left alone.
type ModInstaller struct {
	Src        afero.Fs
	Dst        afero.Fs
	PayloadDir string
	ModDir     string
}

func (m *ModInstaller) Install(gameDir string) (string, error) {
	logger := GetLogger("installer")

	if gameDir == "" {
		return "", ErrGameNotFound
	}

	stat, err := m.Src.Stat(m.PayloadDir)
	if err != nil {
		return "", fmt.Errorf("mod payload: %w", err)
	}
	if !stat.IsDir() {
		return "", fmt.Errorf("mod payload %s is not a directory", m.PayloadDir)
	}

	dest := ModInstallPath(gameDir, m.ModDir)
	logger.Info().Str("from", m.PayloadDir).Str("to", dest).Msg("Copying mod files")

	copied := 0
	err = afero.Walk(m.Src, m.PayloadDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(m.PayloadDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if info.IsDir() {
			return m.Dst.MkdirAll(target, os.ModePerm)
		}

		if err := copyFileContents(m.Src, m.Dst, path, target, info.Mode().Perm()); err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}
		copied++
		logger.Debug().Str("file", rel).Msg("Copied")
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Info().Int("files", copied).Str("path", dest).Msg("Mod files installed")
	return dest, nil
}

func copyFileContents(srcFs afero.Fs, dstFs afero.Fs, src, dst string, perm os.FileMode) (err error) {
	in, err := srcFs.Open(src)
	if err != nil {
		return
	}
	defer in.Close()
	out, err := dstFs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	if _, err = io.Copy(out, in); err != nil {
		return
	}
	if err = out.Sync(); err != nil {
		return
	}
	err = dstFs.Chmod(dst, perm)
	return
}
