package core

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var executable = os.Executable

// ResourceBase returns the directory bundled resources are looked up from.
// A distributed build ships the payload next to the executable; a
// development checkout runs from the repository root.
func ResourceBase(fs afero.Fs, payloadDir string) (string, error) {
	if exe, err := executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		base := filepath.Dir(exe)
		if ok, _ := afero.DirExists(fs, filepath.Join(base, payloadDir)); ok {
			return base, nil
		}
	}
	return os.Getwd()
}

func PayloadPath(fs afero.Fs, payloadDir string) (string, error) {
	if filepath.IsAbs(payloadDir) {
		return payloadDir, nil
	}
	base, err := ResourceBase(fs, payloadDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, payloadDir), nil
}
