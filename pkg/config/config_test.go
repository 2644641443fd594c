package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pingcap/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	viper.Reset()
	_config = nil
	t.Cleanup(func() {
		viper.Reset()
		_config = nil
	})
	SetDefaults()
}

func TestInitConfigDefaults(t *testing.T) {
	resetConfig(t)
	assert.Nil(t, Get())

	require.NoError(t, InitConfig())
	c := Get()
	require.NotNil(t, c)
	assert.Equal(t, 100, c.Codec.MaxDepth)
	assert.Equal(t, 128000, c.Codec.MaxLineSize)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, FormatJSON, c.Output.Format)
	assert.True(t, c.Output.Color)

	assert.Equal(t, ErrDuplicateInitConfig, InitConfig())
}

func TestInitConfigEnv(t *testing.T) {
	t.Setenv("ITYPE_CODEC_MAX_DEPTH", "7")
	t.Setenv("ITYPE_OUTPUT_FORMAT", "TEXT")
	t.Setenv("ITYPE_OUTPUT_COLOR", "false")
	resetConfig(t)

	require.NoError(t, InitConfig())
	assert.Equal(t, 7, Get().Codec.MaxDepth)
	assert.Equal(t, FormatText, Get().Output.Format)
	assert.False(t, Get().Output.Color)
}

func TestInitConfigFile(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "itype.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
codec:
  max_depth: 12
  max_line_size: -5
log:
  level: debug
output:
  format: spew
`), 0o644))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	require.NoError(t, InitConfig())
	c := Get()
	assert.Equal(t, 12, c.Codec.MaxDepth)
	assert.Equal(t, 0, c.Codec.MaxLineSize)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, FormatSpew, c.Output.Format)
	assert.True(t, c.Output.Color)
}

func TestInitConfigInvalidFormat(t *testing.T) {
	t.Setenv("ITYPE_OUTPUT_FORMAT", "xml")
	resetConfig(t)

	err := InitConfig()
	assert.Equal(t, ErrInvalidFormat, errors.Cause(err))
	assert.Nil(t, Get())
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{FormatJSON, FormatText, FormatSpew} {
		assert.True(t, ValidFormat(f), f)
	}
	assert.False(t, ValidFormat("xml"))
	assert.False(t, ValidFormat(""))
}
