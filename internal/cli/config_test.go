package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".blocksift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
caseSensitive: true
literalPatterns: true
extraTypes: [callout, footnote]
removeTypes: [code]
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.LiteralPatterns)
	assert.Equal(t, []string{"callout", "footnote"}, cfg.ExtraTypes)
	assert.Equal(t, []string{"code"}, cfg.RemoveTypes)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".blocksift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
