// ABOUTME: Charm KV credential store synced across a user's devices.
// ABOUTME: Provides thread-safe initialization and automatic cloud sync.
package charm

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/harperreed/coach/internal/storage"
)

const (
	DBName    = "coach"
	charmHost = "charm.2389.dev"

	// CredentialPrefix namespaces credential keys inside the KV database.
	CredentialPrefix = "credential:"
)

var (
	globalClient *Client
	clientOnce   sync.Once
	clientErr    error
)

// Client implements storage.Store on top of Charm KV.
type Client struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ storage.Store = (*Client)(nil)

// InitClient initializes the global Charm client.
// Thread-safe; can be called multiple times.
func InitClient() (*Client, error) {
	clientOnce.Do(func() {
		// Set server before opening KV
		if os.Getenv("CHARM_HOST") == "" {
			if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
				clientErr = err
				return
			}
		}

		db, err := kv.OpenWithDefaultsFallback(DBName)
		if err != nil {
			clientErr = err
			return
		}

		globalClient = &Client{
			kv:       db,
			autoSync: true,
		}

		// Pull credentials saved on other devices (skip in read-only mode)
		if !db.IsReadOnly() {
			_ = db.Sync()
		}
	})

	return globalClient, clientErr
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (c *Client) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// syncIfEnabled calls Sync if autoSync is enabled.
func (c *Client) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		_ = c.kv.Sync()
	}
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Get returns the credential stored under key.
func (c *Client) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fullKey := []byte(CredentialKey(key))

	// Missing-key errors differ between KV backends, so check presence first.
	keys, err := c.kv.Keys()
	if err != nil {
		return "", err
	}
	for _, k := range keys {
		if bytes.Equal(k, fullKey) {
			val, err := c.kv.Get(fullKey)
			if err != nil {
				return "", fmt.Errorf("get %s: %w", key, err)
			}
			return string(val), nil
		}
	}
	return "", storage.ErrNotFound
}

// Set stores a credential and syncs it.
func (c *Client) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := c.kv.Set([]byte(CredentialKey(key)), []byte(value)); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// Delete removes a credential and syncs the removal.
func (c *Client) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := c.kv.Delete([]byte(CredentialKey(key))); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// Keys lists credential keys without their prefix.
func (c *Client) Keys() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}

	var out []string
	prefix := []byte(CredentialPrefix)
	for _, k := range keys {
		if bytes.HasPrefix(k, prefix) {
			out = append(out, extractKey(string(k)))
		}
	}
	return out, nil
}

// CredentialKey returns the namespaced KV key for a credential.
func CredentialKey(key string) string {
	return CredentialPrefix + key
}

// extractKey strips the credential prefix from a KV key.
func extractKey(key string) string {
	return key[len(CredentialPrefix):]
}
