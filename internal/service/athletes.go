// ABOUTME: Athlete-side service functions: profile, sessions, trainer pairing.
package service

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
)

// FetchAthlete returns the logged-in athlete's profile.
func (s *Service) FetchAthlete(ctx context.Context, who session.Identity) (Optional[models.Athlete], error) {
	res, err := fetchOptional[models.Athlete](ctx, s, who, models.RoleAthlete, "/athletes/%d")
	if err != nil {
		return res, fmt.Errorf("fetch athlete: %w", err)
	}
	if a, ok := res.Get(); ok && a.ID <= 0 {
		return None[models.Athlete](), malformed("athlete missing id")
	}
	return res, nil
}

// UpdateAthlete sends only the non-blank fields of upd.
func (s *Service) UpdateAthlete(ctx context.Context, who session.Identity, upd models.AthleteUpdate) (*models.Athlete, error) {
	if err := requireRole(who, models.RoleAthlete); err != nil {
		return nil, err
	}
	upd = upd.Filtered()
	if upd.IsEmpty() {
		return nil, invalid(&models.FieldError{Field: "update", Reason: "has no fields to change"})
	}

	var out models.Athlete
	if err := s.client.Put(ctx, fmt.Sprintf("/athletes/%d", who.UserID), who.Token, upd, &out); err != nil {
		return nil, fmt.Errorf("update athlete: %w", err)
	}
	if out.ID <= 0 {
		return nil, malformed("updated athlete missing id")
	}
	return &out, nil
}

// FetchAthleteSessions lists the sessions assigned to the athlete that are
// not yet completed.
func (s *Service) FetchAthleteSessions(ctx context.Context, who session.Identity) (Optional[[]models.Session], error) {
	res, err := fetchOptional[[]models.Session](ctx, s, who, models.RoleAthlete, "/athletes/athlete_sessions/%d")
	if err != nil {
		return res, fmt.Errorf("fetch athlete sessions: %w", err)
	}
	return res, nil
}

// CompleteAthleteSession marks a session done by deleting the assignment.
func (s *Service) CompleteAthleteSession(ctx context.Context, who session.Identity, sessionID int64) error {
	if err := requireRole(who, models.RoleAthlete); err != nil {
		return err
	}
	if sessionID <= 0 {
		return invalid(&models.FieldError{Field: "session_id", Reason: "must be positive"})
	}

	path := fmt.Sprintf("/athletes/session/%d/%d", who.UserID, sessionID)
	if err := s.client.Delete(ctx, path, who.Token, nil); err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// AssignTrainer pairs the athlete with a trainer.
func (s *Service) AssignTrainer(ctx context.Context, who session.Identity, trainerID int64) (*models.Athlete, error) {
	if err := requireRole(who, models.RoleAthlete); err != nil {
		return nil, err
	}
	if trainerID <= 0 {
		return nil, invalid(&models.FieldError{Field: "trainer_id", Reason: "must be positive"})
	}

	body := map[string]int64{"trainer_id": trainerID}
	var out models.Athlete
	if err := s.client.Put(ctx, fmt.Sprintf("/athletes/assign_trainer/%d", who.UserID), who.Token, body, &out); err != nil {
		return nil, fmt.Errorf("assign trainer: %w", err)
	}
	if out.ID <= 0 {
		return nil, malformed("assigned athlete missing id")
	}
	return &out, nil
}

// AssignSession lets a trainer put a session on an athlete's schedule.
func (s *Service) AssignSession(ctx context.Context, who session.Identity, athleteID, sessionID int64) (*models.AthleteSession, error) {
	if err := requireRole(who, models.RoleTrainer); err != nil {
		return nil, err
	}
	if athleteID <= 0 || sessionID <= 0 {
		return nil, invalid(&models.FieldError{Field: "athlete_id/session_id", Reason: "must be positive"})
	}

	body := map[string]int64{"session_id": sessionID}
	var out models.AthleteSession
	if err := s.client.Post(ctx, fmt.Sprintf("/athletes/athlete_sessions/%d", athleteID), who.Token, body, &out); err != nil {
		return nil, fmt.Errorf("assign session: %w", err)
	}
	if out.SessionID == 0 {
		out = models.AthleteSession{AthleteID: athleteID, SessionID: sessionID}
	}
	return &out, nil
}
