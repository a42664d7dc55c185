package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment variables read by default.
const EnvPrefix = "EDIT_"

// EnvLoader loads configuration from environment variables.
//
// Mapped variables go to their configured path. Other variables with the
// prefix are translated by name: EDIT_EDITOR_SCROLL_FOLLOW becomes
// editor.scroll_follow.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // env var -> config path

	// literal lists paths whose values are never type-converted.
	literal map[string]bool
	// bools lists paths that only take a boolean.
	bools map[string]bool

	environ func() []string
}

// NewEnvLoader creates an environment loader with the default mapping.
// The prefix includes the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, defaultEnvMapping())
}

// NewEnvLoaderWithMapping creates an environment loader with a custom mapping.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		literal: defaultLiteralPaths(),
		bools:   defaultBoolPaths(),
		environ: os.Environ,
	}
}

func defaultEnvMapping() map[string]string {
	return map[string]string{
		"EDIT_LOG_LEVEL":       "logging.level",
		"EDIT_LOG_FILE":        "logging.file",
		"EDIT_BACKEND":         "ui.backend",
		"EDIT_COLORS":          "ui.colors",
		"EDIT_CAPACITY":        "buffer.default_capacity",
		"EDIT_ESCAPE_TIMEOUT":  "editor.escape_timeout",
		"EDIT_PRESERVE_COLUMN": "editor.preserve_column",
		"EDIT_SCROLL_FOLLOW":   "editor.scroll_follow",
	}
}

func defaultLiteralPaths() map[string]bool {
	return map[string]bool{
		"logging.level":         true,
		"logging.file":          true,
		"ui.backend":            true,
		"editor.escape_timeout": true,
	}
}

func defaultBoolPaths() map[string]bool {
	return map[string]bool{
		"ui.colors":              true,
		"editor.preserve_column": true,
		"editor.scroll_follow":   true,
	}
}

// Load reads the environment. Empty values are kept; they are set, not unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	m := make(map[string]any)

	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
			if path == "" {
				continue
			}
		}

		switch {
		case l.literal[path]:
			setByPath(m, path, value)
		case l.bools[path]:
			setByPath(m, path, parseBool(value))
		default:
			setByPath(m, path, parseValue(value))
		}
	}

	return m, nil
}

// envToPath converts EDIT_EDITOR_SCROLL_FOLLOW to editor.scroll_follow.
// A name without a section part yields "".
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseBool also accepts 1 and 0. Anything else stays a string so the
// decoder reports it.
func parseBool(s string) any {
	switch strings.ToLower(s) {
	case "1":
		return true
	case "0":
		return false
	}
	if b, ok := parseValue(s).(bool); ok {
		return b
	}
	return s
}

// parseValue converts booleans, integers and decimals; anything else stays
// a string.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// ExpandEnvInString expands $VAR and ${VAR} references in s.
func ExpandEnvInString(s string) string {
	return os.ExpandEnv(s)
}
