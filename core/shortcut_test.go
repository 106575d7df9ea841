package core_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/lumphrey/er-coop-installer/core"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLink struct {
	linkPath string
	target   string
	workDir  string
}

// MockLinker records links and writes a small file so overwrite behavior can
// be observed on the filesystem.
type MockLinker struct {
	fs    afero.Fs
	calls []fakeLink
	err   error
}

func (l *MockLinker) Ext() string {
	return ".lnk"
}

func (l *MockLinker) CreateLink(linkPath, target, workDir string) error {
	if l.err != nil {
		return l.err
	}
	l.calls = append(l.calls, fakeLink{linkPath, target, workDir})
	return afero.WriteFile(l.fs, linkPath, []byte(fmt.Sprintf("%s\n%s", target, workDir)), 0644)
}

func newShortcutCreator(fs afero.Fs, linker core.Linker) *core.ShortcutCreator {
	return &core.ShortcutCreator{
		Fs:       fs,
		Linker:   linker,
		Folder:   "/home/tarnished/.local/share/EldenRingCoop",
		LinkName: "ELDEN RING Co-op",
		Launcher: "launchmod_eldenring.bat",
	}
}

func TestShortcutCreator_CreatesFolderAndLink(t *testing.T) {
	fs := afero.NewMemMapFs()
	linker := &MockLinker{fs: fs}
	creator := newShortcutCreator(fs, linker)
	modDir := "/games/ELDEN RING/game/coop_mods"

	folder, err := creator.Create(modDir)

	require.NoError(t, err)
	assert.Equal(t, creator.Folder, folder)
	require.Len(t, linker.calls, 1)
	assert.Equal(t, filepath.Join(creator.Folder, "ELDEN RING Co-op.lnk"), linker.calls[0].linkPath)
	assert.Equal(t, filepath.Join(modDir, "launchmod_eldenring.bat"), linker.calls[0].target)
	assert.Equal(t, modDir, linker.calls[0].workDir)
}

func TestShortcutCreator_SecondRunOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	creator := newShortcutCreator(fs, &MockLinker{fs: fs})

	_, err := creator.Create("/first/game/coop_mods")
	require.NoError(t, err)
	_, err = creator.Create("/second/game/coop_mods")
	require.NoError(t, err)

	entries, err := afero.ReadDir(fs, creator.Folder)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	content, err := afero.ReadFile(fs, creator.LinkPath())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/second/game/coop_mods", "launchmod_eldenring.bat")+"\n/second/game/coop_mods", string(content))
}

func TestShortcutCreator_LinkerFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	creator := newShortcutCreator(fs, &MockLinker{fs: fs, err: errors.New("COM unavailable")})

	folder, err := creator.Create("/game/coop_mods")

	assert.Empty(t, folder)
	assert.ErrorContains(t, err, "COM unavailable")
}

func TestShortcutCreator_FolderFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	creator := newShortcutCreator(fs, &MockLinker{fs: fs})

	_, err := creator.Create("/game/coop_mods")

	assert.ErrorContains(t, err, "create shortcut folder")
}
