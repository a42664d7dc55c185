package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jstene/edit/internal/config/loader"
)

// Backend names accepted by ui.backend.
const (
	BackendTcell = "tcell"
	BackendRaw   = "raw"
)

// Log levels accepted by logging.level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds all editor settings.
type Config struct {
	Buffer  BufferConfig  `toml:"buffer"`
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

// BufferConfig configures the text arena.
type BufferConfig struct {
	// DefaultCapacity is the arena size in bytes for small files. Larger
	// files get twice their size.
	DefaultCapacity int `toml:"default_capacity"`
}

// EditorConfig configures cursor and input behavior.
type EditorConfig struct {
	// PreserveColumn keeps the cursor column on up/down moves. When false
	// the cursor lands at column 0 of the target line.
	PreserveColumn bool `toml:"preserve_column"`

	// ScrollFollow scrolls the viewport to keep the cursor line visible.
	ScrollFollow bool `toml:"scroll_follow"`

	// EscapeTimeout is how long an Escape prefix stays pending. Zero waits
	// indefinitely.
	EscapeTimeout Duration `toml:"escape_timeout"`
}

// UIConfig configures the terminal.
type UIConfig struct {
	// Backend selects the terminal driver: "tcell" or "raw".
	Backend string `toml:"backend"`

	// Colors enables the color theme when the terminal has colors.
	Colors bool `toml:"colors"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level string `toml:"level"`

	// File is the log file path. Empty disables logging.
	File string `toml:"file"`

	MaxSizeMB  int `toml:"max_size_mb"`
	MaxBackups int `toml:"max_backups"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A bare "0" is accepted.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Buffer: BufferConfig{
			DefaultCapacity: 65536,
		},
		Editor: EditorConfig{
			PreserveColumn: true,
			ScrollFollow:   true,
			EscapeTimeout:  Duration(time.Second),
		},
		UI: UIConfig{
			Backend: BackendTcell,
			Colors:  true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// DefaultPath returns the default config file location, or "" when the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "edit", "config.toml")
}

// options holds Load settings.
type options struct {
	path    string
	fs      loader.FileSystem
	env     loader.Loader
	useEnv  bool
	strict  bool
	pathSet bool
}

// Option configures Load.
type Option func(*options)

// WithConfigFile reads settings from path instead of DefaultPath.
// An empty path skips the file.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.path = path
		o.pathSet = true
	}
}

// WithFileSystem reads the config file through fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnvLoader replaces the EDIT_* environment loader.
func WithEnvLoader(l loader.Loader) Option {
	return func(o *options) {
		o.env = l
	}
}

// WithoutEnv ignores the environment.
func WithoutEnv() Option {
	return func(o *options) {
		o.useEnv = false
	}
}

// WithLenientFile accepts unknown keys in the config file.
func WithLenientFile() Option {
	return func(o *options) {
		o.strict = false
	}
}

// Load resolves defaults, the config file and the environment into a
// Config. It does not validate; callers apply flag overrides first.
func Load(opts ...Option) (*Config, error) {
	o := &options{
		fs:     loader.DefaultFS(),
		useEnv: true,
		strict: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if !o.pathSet {
		o.path = DefaultPath()
	}
	if o.env == nil {
		o.env = loader.NewEnvLoader(loader.EnvPrefix)
	}

	cfg := Default()

	file, err := loader.NewTOMLLoaderWithFS(o.fs, o.path).Load()
	if err != nil {
		return nil, err
	}
	if file != nil && o.strict {
		if err := decode(Default(), file, true); err != nil {
			return nil, fmt.Errorf("%s: %w", o.path, err)
		}
	}

	var env map[string]any
	if o.useEnv {
		if env, err = o.env.Load(); err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
	}

	merged := loader.DeepMerge(loader.Clone(file), env)
	if len(merged) > 0 {
		if err := decode(cfg, merged, false); err != nil {
			return nil, err
		}
	}

	cfg.Logging.File = loader.ExpandEnvInString(cfg.Logging.File)
	return cfg, nil
}

// decode overlays the settings in m onto cfg. Keys absent from m keep
// their current value.
func decode(cfg *Config, m map[string]any, strict bool) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return fmt.Errorf("%w: unknown setting\n%s", ErrDecode, missing.String())
		}
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if c.Buffer.DefaultCapacity < 2 {
		fail("buffer.default_capacity", "must be at least 2", c.Buffer.DefaultCapacity, ErrCodeOutOfRange)
	}
	if c.Editor.EscapeTimeout < 0 {
		fail("editor.escape_timeout", "must not be negative", c.Editor.EscapeTimeout.Std(), ErrCodeOutOfRange)
	}
	if c.UI.Backend != BackendTcell && c.UI.Backend != BackendRaw {
		fail("ui.backend", `must be "tcell" or "raw"`, c.UI.Backend, ErrCodeInvalidEnum)
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		fail("logging.level", "must be one of debug, info, warn, error", c.Logging.Level, ErrCodeInvalidEnum)
	}
	if c.Logging.MaxSizeMB <= 0 {
		fail("logging.max_size_mb", "must be positive", c.Logging.MaxSizeMB, ErrCodeOutOfRange)
	}
	if c.Logging.MaxBackups < 0 {
		fail("logging.max_backups", "must not be negative", c.Logging.MaxBackups, ErrCodeOutOfRange)
	}

	return errors.Join(errs...)
}

// String returns the settings in TOML form.
func (c *Config) String() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
