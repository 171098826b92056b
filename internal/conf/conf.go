package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
)

var (
	Path string    // Config path
	Conf = Config{ // Default values
		ShowSerial: true,
		ShowGPU:    true,
	}
)

// DefaultPath returns the conventional config file location. Empty string
// means no usable location, which LoadConfig treats as defaults-only.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "minifetch", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "minifetch", "config.toml")
}

// LoadConfig Set Path and load config into memory, then apply environment
// overrides. A missing file is not an error; a malformed one is reported and
// the defaults stand. Run this at start
func LoadConfig(path string) error {
	Path = path
	defer applyEnv(&Conf)

	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Conf); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// applyEnv lets MINIFETCH_* variables override the file values
func applyEnv(c *Config) {
	if v, ok := os.LookupEnv("MINIFETCH_SHOW_SERIAL"); ok {
		c.ShowSerial = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv("MINIFETCH_SHOW_GPU"); ok {
		c.ShowGPU = cast.ToBool(v)
	}
}

// Read returns a copy of the current configuration
func Read() Config {
	return Conf
}
