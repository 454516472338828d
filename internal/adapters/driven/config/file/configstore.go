package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/tome-cli/internal/logger"
)

// ConfigFile is the configuration file name at the book root.
const ConfigFile = "book.toml"

// EnvPrefix marks environment variables that override configuration.
const EnvPrefix = "TOME_"

// ConfigStore is a TOML-backed configuration store for one book.
// Values are held in a flattened dot-notation key map with typed
// getters; nested table structure is restored on save.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a config store for the book rooted at bookDir.
// A missing book.toml is not an error; the store starts empty and the
// typed views fall back to defaults.
func NewConfigStore(bookDir string) (*ConfigStore, error) {
	if bookDir == "" {
		bookDir = "."
	}

	s := &ConfigStore{
		filePath: filepath.Join(bookDir, ConfigFile),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Path returns the location of the configuration file.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Get retrieves a configuration value by dotted key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64; environment overrides arrive
	// as JSON float64.
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}

	// TOML arrays are parsed as []any
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Set stores a configuration value in memory. Call Save to persist.
func (s *ConfigStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
}

// Save persists the current configuration to book.toml, restoring
// nested table structure from the dotted keys.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(unflattenMap(s.data))
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0o644)
}

// Load reads configuration from book.toml. A missing file leaves the
// store empty and returns the os.IsNotExist error for callers that
// care.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	// Flatten nested maps into dot-notation keys for easier access
	s.data = flattenMap(loaded, "")
	return nil
}

// UpdateFromEnv overlays the configuration with TOME_-prefixed
// environment variables. The key is the variable name without the
// prefix, lowercased, with "__" separating nested tables and "_"
// standing in for "-":
//
//	TOME_BOOK__TITLE      -> book.title
//	TOME_BUILD__BUILD_DIR -> build.build-dir
//
// Values are parsed as JSON first so arrays, booleans and numbers can
// be expressed; anything that does not parse is taken as a string.
func (s *ConfigStore) UpdateFromEnv() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		key, ok := parseEnvKey(name)
		if !ok {
			continue
		}

		logger.Debug("config override from environment: %s", key)

		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}

		if nested, isMap := parsed.(map[string]any); isMap {
			for k, v := range flattenMap(nested, key) {
				s.data[k] = v
			}
		} else {
			s.data[key] = parsed
		}
	}
}

// parseEnvKey converts an environment variable name to a dotted
// configuration key, or reports false for unrelated variables.
func parseEnvKey(name string) (string, bool) {
	if !strings.HasPrefix(name, EnvPrefix) {
		return "", false
	}

	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if key == "" {
		return "", false
	}

	key = strings.ReplaceAll(key, "__", ".")
	key = strings.ReplaceAll(key, "_", "-")
	return key, true
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			// Recursively flatten nested maps
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// unflattenMap is the inverse of flattenMap: dot-notation keys become
// nested maps so the saved TOML has proper tables.
func unflattenMap(m map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		parts := strings.Split(key, ".")
		node := result
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}

	return result
}
