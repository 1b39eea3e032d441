// ABOUTME: Trainer-side service functions: profile, roster, drills, sessions.
package service

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
)

// ListTrainers returns every trainer. Athletes use it to pick one, so a
// failure is an error rather than an empty list.
func (s *Service) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	var out []models.Trainer
	if err := s.client.Get(ctx, "/trainers", "", &out); err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return out, nil
}

// FetchTrainer returns the logged-in trainer's profile.
func (s *Service) FetchTrainer(ctx context.Context, who session.Identity) (Optional[models.Trainer], error) {
	res, err := fetchOptional[models.Trainer](ctx, s, who, models.RoleTrainer, "/trainers/%d")
	if err != nil {
		return res, fmt.Errorf("fetch trainer: %w", err)
	}
	if t, ok := res.Get(); ok && t.ID <= 0 {
		return None[models.Trainer](), malformed("trainer missing id")
	}
	return res, nil
}

// UpdateTrainer sends only the non-blank fields of upd.
func (s *Service) UpdateTrainer(ctx context.Context, who session.Identity, upd models.TrainerUpdate) (*models.Trainer, error) {
	if err := requireRole(who, models.RoleTrainer); err != nil {
		return nil, err
	}
	upd = upd.Filtered()
	if upd.IsEmpty() {
		return nil, invalid(&models.FieldError{Field: "update", Reason: "has no fields to change"})
	}

	var out models.Trainer
	if err := s.client.Put(ctx, fmt.Sprintf("/trainers/%d", who.UserID), who.Token, upd, &out); err != nil {
		return nil, fmt.Errorf("update trainer: %w", err)
	}
	if out.ID <= 0 {
		return nil, malformed("updated trainer missing id")
	}
	return &out, nil
}

// FetchTrainerAthletes lists athletes paired with the trainer.
func (s *Service) FetchTrainerAthletes(ctx context.Context, who session.Identity) (Optional[[]models.Athlete], error) {
	res, err := fetchOptional[[]models.Athlete](ctx, s, who, models.RoleTrainer, "/trainers/athletes/%d")
	if err != nil {
		return res, fmt.Errorf("fetch trainer athletes: %w", err)
	}
	return res, nil
}

// FetchTrainerDrills lists drills owned by the trainer.
func (s *Service) FetchTrainerDrills(ctx context.Context, who session.Identity) (Optional[[]models.Drill], error) {
	res, err := fetchOptional[[]models.Drill](ctx, s, who, models.RoleTrainer, "/trainers/drills/%d")
	if err != nil {
		return res, fmt.Errorf("fetch trainer drills: %w", err)
	}
	return res, nil
}

// FetchTrainerSessions lists sessions owned by the trainer.
func (s *Service) FetchTrainerSessions(ctx context.Context, who session.Identity) (Optional[[]models.Session], error) {
	res, err := fetchOptional[[]models.Session](ctx, s, who, models.RoleTrainer, "/trainers/sessions/%d")
	if err != nil {
		return res, fmt.Errorf("fetch trainer sessions: %w", err)
	}
	return res, nil
}
