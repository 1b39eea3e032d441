// ABOUTME: Per-role login identity stored as a token and numeric user id.
// ABOUTME: Loaded once by the caller and passed explicitly into service calls.
package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
)

// ErrNotLoggedIn means no usable identity is stored for the role.
var ErrNotLoggedIn = errors.New("not logged in")

// Identity is the authenticated user of one role.
type Identity struct {
	Role   models.Role
	Token  string
	UserID int64
}

// Valid reports whether the identity can scope a request.
func (id Identity) Valid() bool {
	return id.Role != "" && id.UserID > 0
}

// Anonymous returns an identity with no stored id for role.
func Anonymous(role models.Role) Identity {
	return Identity{Role: role}
}

// Load reads the role's identity from the store.
func Load(st storage.Store, role models.Role) (Identity, error) {
	token, err := st.Get(role.TokenKey())
	if errors.Is(err, storage.ErrNotFound) {
		return Anonymous(role), ErrNotLoggedIn
	}
	if err != nil {
		return Anonymous(role), fmt.Errorf("read %s: %w", role.TokenKey(), err)
	}

	rawID, err := st.Get(role.IDKey())
	if errors.Is(err, storage.ErrNotFound) {
		return Anonymous(role), ErrNotLoggedIn
	}
	if err != nil {
		return Anonymous(role), fmt.Errorf("read %s: %w", role.IDKey(), err)
	}

	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || userID <= 0 {
		return Anonymous(role), ErrNotLoggedIn
	}

	return Identity{Role: role, Token: token, UserID: userID}, nil
}

// Save writes token then id. If the id write fails the token is removed
// again so a half-written login is never left behind.
func Save(st storage.Store, id Identity) error {
	if !id.Valid() {
		return fmt.Errorf("save identity: missing role or user id")
	}
	if err := st.Set(id.Role.TokenKey(), id.Token); err != nil {
		return fmt.Errorf("write %s: %w", id.Role.TokenKey(), err)
	}
	if err := st.Set(id.Role.IDKey(), strconv.FormatInt(id.UserID, 10)); err != nil {
		_ = st.Delete(id.Role.TokenKey())
		return fmt.Errorf("write %s: %w", id.Role.IDKey(), err)
	}
	return nil
}

// Clear removes both keys for role.
func Clear(st storage.Store, role models.Role) error {
	return errors.Join(
		st.Delete(role.TokenKey()),
		st.Delete(role.IDKey()),
	)
}
