// ABOUTME: Coach configuration: API endpoint, timeout, and credential backend.
// ABOUTME: Handles env overrides, device identity, and the store factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/api"
	"github.com/harperreed/coach/internal/charm"
	"github.com/harperreed/coach/internal/storage"
	"github.com/oklog/ulid/v2"
)

// Backends lists the supported credential store backends.
var Backends = []string{"sqlite", "badger", "charm"}

// Config stores coach tool configuration.
type Config struct {
	// APIURL is the platform base URL. COACH_API_URL overrides it.
	APIURL string `json:"api_url,omitempty"`

	// TimeoutSeconds bounds every request. Defaults to 5.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// Backend selects the credential store: "sqlite" (default), "badger",
	// or "charm". COACH_BACKEND overrides it.
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local stores.
	// Supports ~ expansion. Defaults to ~/.local/share/coach.
	DataDir string `json:"data_dir,omitempty"`

	// DeviceID identifies this install in request headers.
	DeviceID string `json:"device_id,omitempty"`
}

// GetAPIURL returns the platform URL, honoring COACH_API_URL.
func (c *Config) GetAPIURL() string {
	if env := os.Getenv("COACH_API_URL"); env != "" {
		return strings.TrimRight(env, "/")
	}
	if c.APIURL == "" {
		return api.DefaultBaseURL
	}
	return strings.TrimRight(c.APIURL, "/")
}

// GetTimeout returns the request timeout.
func (c *Config) GetTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return api.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if env := os.Getenv("COACH_BACKEND"); env != "" {
		return env
	}
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// EnsureDeviceID assigns a ULID device id if none is set. It reports
// whether the config changed.
func (c *Config) EnsureDeviceID() bool {
	if c.DeviceID != "" {
		return false
	}
	c.DeviceID = ulid.Make().String()
	return true
}

// ClientOptions builds transport options from the config.
func (c *Config) ClientOptions() api.Options {
	return api.Options{
		BaseURL:  c.GetAPIURL(),
		Timeout:  c.GetTimeout(),
		DeviceID: c.DeviceID,
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates the credential store for the configured backend.
func (c *Config) OpenStore() (storage.Store, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir())
}

// OpenBackend opens a named backend rooted at dataDir.
func OpenBackend(backend, dataDir string) (storage.Store, error) {
	switch backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "coach.db"))
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case "charm":
		return charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// Set assigns a config field by its JSON name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		c.APIURL = strings.TrimSpace(value)
	case "timeout_seconds":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		c.TimeoutSeconds = n
	case "backend":
		if !validBackend(value) {
			return fmt.Errorf("unknown backend: %q (want one of %s)", value, strings.Join(Backends, ", "))
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "device_id":
		return fmt.Errorf("device_id is generated and cannot be set")
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

// Values returns the effective settings keyed by JSON name.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"api_url":         c.GetAPIURL(),
		"timeout_seconds": strconv.Itoa(int(c.GetTimeout() / time.Second)),
		"backend":         c.GetBackend(),
		"data_dir":        c.GetDataDir(),
		"device_id":       c.DeviceID,
	}
}

// SortedKeys returns the keys of Values in order.
func (c *Config) SortedKeys() []string {
	vals := c.Values()
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validBackend(b string) bool {
	for _, v := range Backends {
		if v == b {
			return true
		}
	}
	return false
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "coach", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
