package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/thumbcrop/internal/config"
	"github.com/srlehn/thumbcrop/internal/consts"
)

func TestLoadMissingGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), `none.toml`))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, consts.TargetSideDefault, cfg.TargetWidth)
	assert.Equal(t, `thumbnail.jpg`, filepath.Base(cfg.SavePath))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), `sub`, `config.toml`)
	cfg := config.Default()
	cfg.SavePath = `/tmp/x.png`
	cfg.TargetWidth = 120
	cfg.TargetHeight = 90
	cfg.QualityResizer = `catmull-rom`
	cfg.Overwrite = true
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidateClamps(t *testing.T) {
	cfg := &config.Config{TargetWidth: 5000, TargetHeight: -3, JPEGQuality: 140, MaxPixels: -1}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, consts.TargetSideMax, cfg.TargetWidth)
	assert.Equal(t, consts.TargetSideDefault, cfg.TargetHeight)
	assert.Equal(t, consts.JPEGQualityDefault, cfg.JPEGQuality)
	assert.Equal(t, consts.MaxPixelsDefault, cfg.MaxPixels)
	assert.Equal(t, consts.ResizerFastDefault, cfg.FastResizer)
	assert.Equal(t, consts.ResizerQualityDefault, cfg.QualityResizer)

	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())
}

func TestLoadPartialAndBroken(t *testing.T) {
	dir := t.TempDir()
	partial := filepath.Join(dir, `partial.toml`)
	require.NoError(t, os.WriteFile(partial, []byte("target_width = 64\nfast_resizer = \"box\"\n"), 0o644))
	cfg, err := config.Load(partial)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.TargetWidth)
	assert.Equal(t, consts.TargetSideDefault, cfg.TargetHeight)
	assert.Equal(t, `box`, cfg.FastResizer)

	broken := filepath.Join(dir, `broken.toml`)
	require.NoError(t, os.WriteFile(broken, []byte(`target_width = = 1`), 0o644))
	cfg, err = config.Load(broken)
	assert.Error(t, err)
	assert.Equal(t, config.Default(), cfg)
}
