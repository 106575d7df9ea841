//go:build !windows

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// DesktopEntryLinker writes freedesktop.org .desktop launchers.
type DesktopEntryLinker struct {
	Fs   afero.Fs
	Name string
}

func NewLinker(fs afero.Fs, name string) Linker {
	return &DesktopEntryLinker{Fs: fs, Name: name}
}

func (l *DesktopEntryLinker) Ext() string {
	return ".desktop"
}

func (l *DesktopEntryLinker) CreateLink(linkPath, target, workDir string) error {
	var sb strings.Builder
	sb.WriteString("[Desktop Entry]\n")
	sb.WriteString("Type=Application\n")
	fmt.Fprintf(&sb, "Name=%s\n", escapeValue(l.Name))
	fmt.Fprintf(&sb, "Exec=%s\n", escapeValue(quoteExec(target)))
	fmt.Fprintf(&sb, "Path=%s\n", escapeValue(workDir))
	sb.WriteString("Terminal=false\n")

	return afero.WriteFile(l.Fs, linkPath, []byte(sb.String()), os.FileMode(0755))
}

// quoteExec quotes a single Exec argument. The result is still subject to
// escapeValue like any other string value.
func quoteExec(arg string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`, `%`, `%%`)
	return `"` + replacer.Replace(arg) + `"`
}

func escapeValue(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\t", `\t`, "\r", `\r`)
	return replacer.Replace(value)
}
