// ABOUTME: Training session creation, deletion, and drill attachment.
package service

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/api"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
)

// CreateSession creates a session owned by the logged-in trainer.
func (s *Service) CreateSession(ctx context.Context, who session.Identity, in models.NewSession) (*models.Session, error) {
	if err := requireRole(who, models.RoleTrainer); err != nil {
		return nil, err
	}
	in.TrainerID = who.UserID
	if err := in.Validate(); err != nil {
		return nil, invalid(err)
	}

	var resp models.SessionCreated
	if err := s.client.Post(ctx, "/sessions", who.Token, in, &resp); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if resp.ID <= 0 {
		return nil, malformed("created session missing id")
	}

	sess := resp.Session
	if sess.Name == "" {
		sess.Name = in.Name
		sess.Length = in.Length
		sess.Level = in.Level
	}
	if sess.TrainerID == 0 {
		sess.TrainerID = in.TrainerID
	}
	return &sess, nil
}

// DeleteSession removes one of the trainer's sessions.
func (s *Service) DeleteSession(ctx context.Context, who session.Identity, sessionID int64) error {
	if err := requireRole(who, models.RoleTrainer); err != nil {
		return err
	}
	if sessionID <= 0 {
		return invalid(&models.FieldError{Field: "session_id", Reason: "must be positive"})
	}
	if err := s.client.Delete(ctx, fmt.Sprintf("/sessions/%d", sessionID), who.Token, nil); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// FetchSessionDrills lists a session's drills in order. Either role may
// call it.
func (s *Service) FetchSessionDrills(ctx context.Context, who session.Identity, sessionID int64) (Optional[[]models.Drill], error) {
	if !who.Valid() {
		s.logger.Warn("skipping fetch", "endpoint", "/sessions/session_drills", "reason", session.ErrNotLoggedIn)
		return None[[]models.Drill](), nil
	}
	if sessionID <= 0 {
		return None[[]models.Drill](), invalid(&models.FieldError{Field: "session_id", Reason: "must be positive"})
	}

	var out []models.Drill
	if err := s.client.Get(ctx, fmt.Sprintf("/sessions/session_drills/%d", sessionID), who.Token, &out); err != nil {
		if api.IsNotFound(err) {
			return None[[]models.Drill](), nil
		}
		return None[[]models.Drill](), fmt.Errorf("fetch session drills: %w", err)
	}
	return Some(out), nil
}

// AddDrillToSession appends a drill to the end of a session.
func (s *Service) AddDrillToSession(ctx context.Context, who session.Identity, sessionID, drillID int64) error {
	if err := requireRole(who, models.RoleTrainer); err != nil {
		return err
	}
	if sessionID <= 0 || drillID <= 0 {
		return invalid(&models.FieldError{Field: "session_id/drill_id", Reason: "must be positive"})
	}

	body := map[string]int64{"drill_id": drillID}
	if err := s.client.Post(ctx, fmt.Sprintf("/sessions/session_drills/%d", sessionID), who.Token, body, nil); err != nil {
		return fmt.Errorf("add drill to session: %w", err)
	}
	return nil
}
