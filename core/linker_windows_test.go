//go:build windows

package core

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestQuotePowerShell(t *testing.T) {
	assert.Equal(t, `'C:\Games\ELDEN RING'`, quotePowerShell(`C:\Games\ELDEN RING`))
	assert.Equal(t, `'C:\Users\O''Brien\AppData'`, quotePowerShell(`C:\Users\O'Brien\AppData`))
	assert.Equal(t, `''''''`, quotePowerShell(`''`))
	assert.Equal(t, `''`, quotePowerShell(""))
}

func TestShellLinker_Ext(t *testing.T) {
	assert.Equal(t, ".lnk", NewLinker(afero.NewMemMapFs(), "ELDEN RING Co-op").Ext())
}
