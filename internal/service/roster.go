// ABOUTME: Builds a full roster snapshot for export from trainer reads.
package service

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/storage"
)

// Roster gathers the trainer's profile, athletes, sessions, and drills.
// Unlike the individual reads, a missing profile is an error here.
func (s *Service) Roster(ctx context.Context, who session.Identity) (*storage.Roster, error) {
	trainer, err := s.FetchTrainer(ctx, who)
	if err != nil {
		return nil, err
	}
	t, ok := trainer.Get()
	if !ok {
		return nil, fmt.Errorf("roster: %w", session.ErrNotLoggedIn)
	}

	r := storage.NewRoster(&t)

	athletes, err := s.FetchTrainerAthletes(ctx, who)
	if err != nil {
		return nil, err
	}
	r.Athletes = athletes.OrZero()

	sessions, err := s.FetchTrainerSessions(ctx, who)
	if err != nil {
		return nil, err
	}
	r.Sessions = sessions.OrZero()

	drills, err := s.FetchTrainerDrills(ctx, who)
	if err != nil {
		return nil, err
	}
	r.Drills = drills.OrZero()

	return r, nil
}
