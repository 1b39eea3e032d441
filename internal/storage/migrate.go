// ABOUTME: Credential migration between storage backends.
// ABOUTME: Copies each role's token and id from source to destination.
package storage

import (
	"errors"
	"fmt"

	"github.com/harperreed/coach/internal/models"
)

// MigrateSummary holds counts of migrated keys.
type MigrateSummary struct {
	Keys  int
	Roles []models.Role
}

// MigrateData copies every stored credential from src to dst. Roles with
// nothing stored in src are skipped, leaving dst untouched for them.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	for _, role := range models.AllRoles {
		copied := false
		for _, key := range []string{role.TokenKey(), role.IDKey()} {
			value, err := src.Get(key)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", key, err)
			}
			if err := dst.Set(key, value); err != nil {
				return nil, fmt.Errorf("write %s: %w", key, err)
			}
			summary.Keys++
			copied = true
		}
		if copied {
			summary.Roles = append(summary.Roles, role)
		}
	}

	return summary, nil
}
