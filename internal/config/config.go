package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/glint/internal/config/loader"
)

// Layer names, lowest priority first.
const (
	LayerDefaults = "defaults"
	LayerFile     = "file"
	LayerEnv      = "env"
	LayerFlags    = "flags"
)

var layerOrder = []string{LayerDefaults, LayerFile, LayerEnv, LayerFlags}

// Config provides unified access to the glint configuration.
type Config struct {
	mu sync.RWMutex

	fs       loader.FileSystem
	path     string
	explicit bool // path was given by the user, so it must exist
	env      *loader.EnvLoader

	layers map[string]map[string]any
	merged map[string]any
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the config file to read. A file named explicitly must exist.
func WithPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.path = path
			c.explicit = true
		}
	}
}

// WithFileSystem sets the file system used to read the config file.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvLoader replaces the environment source.
func WithEnvLoader(env *loader.EnvLoader) Option {
	return func(c *Config) {
		c.env = env
	}
}

// New creates a new Config instance with the given options.
// Until Load is called only the defaults are visible.
func New(opts ...Option) *Config {
	c := &Config{
		fs:     loader.DefaultFS(),
		env:    loader.NewEnvLoader(loader.EnvPrefix),
		layers: make(map[string]map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.path == "" {
		c.path = DefaultPath()
	}

	c.layers[LayerDefaults] = defaultConfig()
	c.rebuild()
	return c
}

// Load reads the config file and environment and validates the result.
func (c *Config) Load() error {
	fileData, err := c.loadFile()
	if err != nil {
		return err
	}

	envData, err := c.env.Load()
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}

	c.mu.Lock()
	c.layers[LayerFile] = fileData
	c.layers[LayerEnv] = envData
	c.rebuild()
	c.mu.Unlock()

	return c.Validate()
}

// loadFile reads the config file layer.
func (c *Config) loadFile() (map[string]any, error) {
	l, err := loader.ForPath(c.fs, c.path)
	if err != nil {
		return nil, err
	}

	data, err := l.Load()
	if err != nil {
		return nil, err
	}
	if data == nil && c.explicit {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, c.path)
	}
	return data, nil
}

// Path returns the config file path in use.
func (c *Config) Path() string {
	return c.path
}

// Set sets a value in the flags layer, which overrides every other source.
func (c *Config) Set(path string, value any) error {
	if splitPath(path) == nil {
		return ErrInvalidPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	flags := c.layers[LayerFlags]
	if flags == nil {
		flags = make(map[string]any)
		c.layers[LayerFlags] = flags
	}
	loader.SetByPath(flags, strings.Join(splitPath(path), "."), value)
	c.rebuild()
	return nil
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return loader.GetByPath(c.merged, path)
}

// WhichLayer returns the name of the highest layer defining path,
// or "" if no layer does.
func (c *Config) WhichLayer(path string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := len(layerOrder) - 1; i >= 0; i-- {
		if _, ok := loader.GetByPath(c.layers[layerOrder[i]], path); ok {
			return layerOrder[i]
		}
	}
	return ""
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetStringSlice returns a string slice at the given path.
// A single string is returned as a one-element slice.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	return toStringSlice(path, v)
}

// GetStringMap returns the table at the given path.
// The returned map is a copy.
func (c *Config) GetStringMap(path string) (map[string]any, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &TypeError{Path: path, Expected: "map", Actual: typeName(v)}
	}
	return loader.Clone(m), nil
}

// Merged returns a copy of the fully merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return loader.Clone(c.merged)
}

// rebuild recomputes the merged view. Caller must hold c.mu for writing.
func (c *Config) rebuild() {
	merged := make(map[string]any)
	for _, name := range layerOrder {
		merged = loader.DeepMerge(merged, loader.Clone(c.layers[name]))
	}
	c.merged = merged
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glint", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "glint", "config.toml")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"ui": map[string]any{
			"backend":     BackendTcell,
			"placeholder": "~",
			"product":     "glint",
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"keymap": map[string]any{},
	}
}

func toStringSlice(path string, v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []string:
		return append([]string(nil), val...), nil
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path, Expected: "[]string", Actual: "[]" + typeName(item)}
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
	}
}

// splitPath splits a dot-separated path into parts, dropping empty parts.
func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
