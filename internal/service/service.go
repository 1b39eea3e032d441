// ABOUTME: Service functions wrapping exactly one platform API call each.
// ABOUTME: Callers pass the session identity in; nothing reads ambient storage.
package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/harperreed/coach/internal/api"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/storage"
)

// ErrInvalidInput wraps input validation failures. The wrapped
// *models.FieldError names the offending field.
var ErrInvalidInput = errors.New("invalid input")

// Service binds the transport client to the credential store.
type Service struct {
	client *api.Client
	store  storage.Store
	logger *log.Logger
}

// New creates a Service. A nil logger discards output.
func New(client *api.Client, store storage.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{client: client, store: store, logger: logger}
}

// Identity loads the stored identity for role. The returned identity is
// anonymous (but still usable) when err is session.ErrNotLoggedIn.
func (s *Service) Identity(role models.Role) (session.Identity, error) {
	return session.Load(s.store, role)
}

// requireRole checks that who is a logged-in user of role.
func requireRole(who session.Identity, role models.Role) error {
	if !who.Valid() || who.Role != role {
		return fmt.Errorf("%w as %s", session.ErrNotLoggedIn, role)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func malformed(what string) error {
	return fmt.Errorf("%s: %w", what, api.ErrMalformedResponse)
}
