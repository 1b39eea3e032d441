// ABOUTME: Optional result type for reads where "nothing to show" is normal.
// ABOUTME: Keeps absence separate from failure instead of overloading nil.
package service

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/api"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
)

// Optional holds a value or nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None is the empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OK reports whether a value is present.
func (o Optional[T]) OK() bool {
	return o.ok
}

// OrZero returns the value, or T's zero value when empty.
func (o Optional[T]) OrZero() T {
	return o.value
}

// fetchOptional performs an identity-scoped GET. A missing identity or a
// 404 yields None; the former is logged and never reaches the network.
func fetchOptional[T any](ctx context.Context, s *Service, who session.Identity, role models.Role, pathFmt string) (Optional[T], error) {
	if err := requireRole(who, role); err != nil {
		s.logger.Warn("skipping fetch", "role", role, "endpoint", pathFmt, "reason", err)
		return None[T](), nil
	}

	path := fmt.Sprintf(pathFmt, who.UserID)
	var out T
	if err := s.client.Get(ctx, path, who.Token, &out); err != nil {
		if api.IsNotFound(err) {
			return None[T](), nil
		}
		return None[T](), err
	}
	return Some(out), nil
}
