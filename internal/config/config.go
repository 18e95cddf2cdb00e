package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
)

// Config holds the thumbnail save properties and resampling choices.
// It is read from and written to a TOML file, remembering the last used
// target between runs.
type Config struct {
	SavePath       string `toml:"save_path"`
	TargetWidth    int    `toml:"target_width"`
	TargetHeight   int    `toml:"target_height"`
	Overwrite      bool   `toml:"overwrite"`
	FastResizer    string `toml:"fast_resizer"`
	QualityResizer string `toml:"quality_resizer"`
	JPEGQuality    int    `toml:"jpeg_quality"`
	MaxPixels      int    `toml:"max_pixels"`
}

// Default returns a Config populated with standard defaults.
func Default() *Config {
	savePath, err := os.Getwd()
	if err != nil {
		savePath = `.`
	}
	return &Config{
		SavePath:       filepath.Join(savePath, `thumbnail.jpg`),
		TargetWidth:    consts.TargetSideDefault,
		TargetHeight:   consts.TargetSideDefault,
		FastResizer:    consts.ResizerFastDefault,
		QualityResizer: consts.ResizerQualityDefault,
		JPEGQuality:    consts.JPEGQualityDefault,
		MaxPixels:      consts.MaxPixelsDefault,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NilReceiver()
	}
	if c.TargetWidth <= 0 {
		c.TargetWidth = consts.TargetSideDefault
	}
	if c.TargetWidth > consts.TargetSideMax {
		c.TargetWidth = consts.TargetSideMax
	}
	if c.TargetHeight <= 0 {
		c.TargetHeight = consts.TargetSideDefault
	}
	if c.TargetHeight > consts.TargetSideMax {
		c.TargetHeight = consts.TargetSideMax
	}
	if len(c.FastResizer) == 0 {
		c.FastResizer = consts.ResizerFastDefault
	}
	if len(c.QualityResizer) == 0 {
		c.QualityResizer = consts.ResizerQualityDefault
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = consts.JPEGQualityDefault
	}
	if c.MaxPixels < 0 {
		c.MaxPixels = consts.MaxPixelsDefault
	}
	return nil
}

// Load reads the configuration from the TOML file at path. If the file does
// not exist it returns Default(). On decoding errors defaults are returned
// with the error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.New(err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return Default(), errors.New(err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to path in TOML format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); len(dir) > 0 {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New(err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.New(err)
	}
	return errors.Join(f.Close())
}

// DefaultPath is the per user configuration file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ``
	}
	return filepath.Join(dir, consts.LibraryName, `config.toml`)
}
