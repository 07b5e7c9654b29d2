package wallpaperlib

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/awused/awconf"
)

const configName = "monitor-wallpaper"

// ErrNoConfig is returned by Init when no path was given and no config file
// could be found. Any other error means a config exists but is unusable.
var ErrNoConfig = errors.New("No config file found")

// The only error awconf returns without having found a file
const awconfNotFound = "Unable to find config file for " + configName

type Config struct {
	LogFile string
	Debug   bool
	// Default mode when none is given on the command line
	Mode string
	// One of center, tile, stretch, fit, fill or span. Left alone when empty.
	Position string
	// Windows recompresses wallpapers as JPEGs, 100 avoids visible artifacts
	JPEGImportQuality *int
	// Only needed for random
	OriginalsDirectory  string
	DatabaseDir         string
	ImageFileExtensions []string
}

var conf *Config

func GetConfig() (*Config, error) {
	if conf != nil {
		return conf, nil
	}

	return nil, fmt.Errorf("Init never called")
}

// Init loads the config from path, or searches for monitor-wallpaper.toml in
// the usual places when path is empty.
func Init(path string) (*Config, error) {
	c := &Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("Error reading config [%s]: %w", path, err)
		}
	} else if err := awconf.LoadConfig(configName, c); err != nil {
		if err.Error() == awconfNotFound {
			return nil, fmt.Errorf("%w for %s", ErrNoConfig, configName)
		}
		return nil, fmt.Errorf("Error reading config: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	conf = c
	return c, nil
}

// UseDefaultConfig is for commands that work without any config file.
func UseDefaultConfig() *Config {
	conf = &Config{}
	return conf
}

func (c *Config) validate() error {
	if c.Mode != "" {
		if _, err := ParseMode(c.Mode); err != nil {
			return fmt.Errorf("Config contains %w", err)
		}
	}

	if c.Position != "" {
		if _, err := ParsePosition(c.Position); err != nil {
			return err
		}
	}

	if c.JPEGImportQuality != nil &&
		(*c.JPEGImportQuality < 1 || *c.JPEGImportQuality > 100) {
		return fmt.Errorf("JPEGImportQuality must be between 1 and 100")
	}

	for i, ext := range c.ImageFileExtensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.ImageFileExtensions[i] = ext
	}

	return nil
}

// ValidateOriginals checks the settings only random needs.
func (c *Config) ValidateOriginals() error {
	if c.OriginalsDirectory == "" {
		return fmt.Errorf("Config missing OriginalsDirectory")
	}
	if err := checkDir("OriginalsDirectory", c.OriginalsDirectory); err != nil {
		return err
	}

	if c.DatabaseDir == "" {
		return fmt.Errorf("Config missing DatabaseDir")
	}
	if err := checkDir("DatabaseDir", c.DatabaseDir); err != nil {
		return err
	}

	if len(c.ImageFileExtensions) == 0 {
		return fmt.Errorf("No ImageFileExtensions present in config")
	}

	return nil
}

func checkDir(name, dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("Error calling os.Stat on %s [%s]: %w", name, dir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s [%s] is not a directory", name, dir)
	}
	return nil
}

func configuredMode() (Mode, bool) {
	if conf == nil || conf.Mode == "" {
		return 0, false
	}
	m, err := ParseMode(conf.Mode)
	return m, err == nil
}

// DefaultMode is the configured mode, or Every.
func DefaultMode() Mode {
	if m, ok := configuredMode(); ok {
		return m
	}
	return Every
}

func configuredPosition() (Position, bool) {
	if conf == nil || conf.Position == "" {
		return 0, false
	}
	p, err := ParsePosition(conf.Position)
	return p, err == nil
}

func configuredJPEGImportQuality() (uint32, bool) {
	if conf == nil || conf.JPEGImportQuality == nil {
		return 0, false
	}
	return uint32(*conf.JPEGImportQuality), true
}
