package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configDirName = "nodemap"

// Config holds the nodemap configuration
type Config struct {
	Minimap     MinimapConfig     `toml:"minimap"`
	Canvas      CanvasConfig      `toml:"canvas"`
	Display     DisplayConfig     `toml:"display"`
	Theme       ThemeConfig       `toml:"theme"`
	Keys        KeybindingsConfig `toml:"keys"`
	RecentFiles []string          `toml:"recent_files,omitempty"` // Recently opened graphs (max 10)
}

// MaxRecentFiles is the maximum number of recent files to track
const MaxRecentFiles = 10

// AddRecentFile adds a file to the recent files list
func (c *Config) AddRecentFile(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	// Remove if already in list (will re-add at top)
	newList := make([]string, 0, MaxRecentFiles)
	for _, f := range c.RecentFiles {
		if f != absPath {
			newList = append(newList, f)
		}
	}

	c.RecentFiles = append([]string{absPath}, newList...)
	if len(c.RecentFiles) > MaxRecentFiles {
		c.RecentFiles = c.RecentFiles[:MaxRecentFiles]
	}
}

// MinimapConfig sizes the overview box. Sizes are in braille dots: a
// terminal cell is 2 dots wide and 4 tall.
type MinimapConfig struct {
	Enabled       bool    `toml:"enabled"`
	Size          int     `toml:"size"`            // Box height in dots
	Ratio         float64 `toml:"ratio"`           // Box width / height
	DoubleClickMS int     `toml:"double_click_ms"` // Max gap between the two presses of a double-click
}

// CanvasConfig holds camera settings
type CanvasConfig struct {
	ZoomStep  float64 `toml:"zoom_step"` // Factor per wheel notch or key press
	MinZoom   float64 `toml:"min_zoom"`
	MaxZoom   float64 `toml:"max_zoom"`
	PanStep   int     `toml:"pan_step"` // Dots per arrow key press
	FitOnOpen bool    `toml:"fit_on_open"`
}

// DisplayConfig holds terminal overrides
type DisplayConfig struct {
	TrueColor *bool `toml:"true_color"` // nil = auto-detect
	AsciiMode *bool `toml:"ascii_mode"` // nil = auto-detect, true/false = override
}

// ThemeConfig holds the theme reference in the main config
// Just references a theme by name - the actual colors come from theme files
type ThemeConfig struct {
	Name string `toml:"name"` // Theme name (built-in or from themes/ directory)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Minimap: MinimapConfig{
			Enabled:       true,
			Size:          40,
			Ratio:         2,
			DoubleClickMS: 400,
		},
		Canvas: CanvasConfig{
			ZoomStep:  1.2,
			MinZoom:   0.02,
			MaxZoom:   2,
			PanStep:   8,
			FitOnOpen: true,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Keys: *DefaultKeybindings(),
	}
}

// Validate replaces out-of-range values with defaults and reports
// which fields it fixed.
func (c *Config) Validate() []string {
	def := DefaultConfig()
	var fixed []string
	if c.Minimap.Size < 8 {
		c.Minimap.Size = def.Minimap.Size
		fixed = append(fixed, "minimap.size")
	}
	if c.Minimap.Ratio <= 0 {
		c.Minimap.Ratio = def.Minimap.Ratio
		fixed = append(fixed, "minimap.ratio")
	}
	if c.Minimap.DoubleClickMS <= 0 {
		c.Minimap.DoubleClickMS = def.Minimap.DoubleClickMS
		fixed = append(fixed, "minimap.double_click_ms")
	}
	if c.Canvas.ZoomStep <= 1 {
		c.Canvas.ZoomStep = def.Canvas.ZoomStep
		fixed = append(fixed, "canvas.zoom_step")
	}
	if c.Canvas.MinZoom <= 0 || c.Canvas.MaxZoom < c.Canvas.MinZoom {
		c.Canvas.MinZoom = def.Canvas.MinZoom
		c.Canvas.MaxZoom = def.Canvas.MaxZoom
		fixed = append(fixed, "canvas.min_zoom", "canvas.max_zoom")
	}
	if c.Canvas.PanStep <= 0 {
		c.Canvas.PanStep = def.Canvas.PanStep
		fixed = append(fixed, "canvas.pan_step")
	}
	return fixed
}

// Dir returns the nodemap config directory
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, configDirName), nil
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ThemesDir returns the path to the user themes directory
func ThemesDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "themes"), nil
}

// ConfigLoadError holds details about a config loading error
type ConfigLoadError struct {
	FilePath string
	Err      error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Load reads the configuration from the default path
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil // Return defaults on error
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path
// Returns default config if file doesn't exist
// Returns ConfigLoadError (and defaults) if file exists but has parse errors
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), &ConfigLoadError{FilePath: path, Err: err}
	}
	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to path, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("# nodemap configuration\n\n"); err != nil {
		return err
	}
	return toml.NewEncoder(f).Encode(c)
}

// GetResolved loads and returns the complete theme
func (t *ThemeConfig) GetResolved() Theme {
	return LoadTheme(t.Name)
}
