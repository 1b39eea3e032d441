// ABOUTME: Login, logout, and sign-up for both roles.
// ABOUTME: Token and id are persisted only after a well-formed success response.
package service

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
)

// Login authenticates role and persists its token and id. It returns the
// display name from the response.
func (s *Service) Login(ctx context.Context, role models.Role, creds models.Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", invalid(err)
	}

	var resp models.LoginResponse
	if err := s.client.Post(ctx, role.LoginPath(), "", creds, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" || resp.ID <= 0 {
		return "", malformed("login response missing token or id")
	}

	if err := session.Save(s.store, session.Identity{Role: role, Token: resp.Token, UserID: resp.ID}); err != nil {
		return "", fmt.Errorf("save login: %w", err)
	}
	s.logger.Debug("logged in", "role", role, "id", resp.ID)

	name := resp.Name
	if name == "" {
		name = creds.Username
	}
	return name, nil
}

// Logout removes the role's stored token and id.
func (s *Service) Logout(role models.Role) error {
	if err := session.Clear(s.store, role); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// SignUpAthlete registers an athlete. When the response carries a token the
// new account is logged in immediately.
func (s *Service) SignUpAthlete(ctx context.Context, in models.AthleteSignUp) (*models.Athlete, error) {
	if err := in.Validate(); err != nil {
		return nil, invalid(err)
	}

	var resp models.AthleteCreated
	if err := s.client.Post(ctx, "/athletes", "", in, &resp); err != nil {
		return nil, fmt.Errorf("sign up athlete: %w", err)
	}
	if resp.ID <= 0 {
		return nil, malformed("sign-up response missing id")
	}

	if err := s.persistSignUp(models.RoleAthlete, resp.Token, resp.ID); err != nil {
		return nil, err
	}
	return &resp.Athlete, nil
}

// SignUpTrainer registers a trainer. Years of experience must be numeric;
// otherwise nothing is sent.
func (s *Service) SignUpTrainer(ctx context.Context, in models.TrainerSignUp) (*models.Trainer, error) {
	payload, err := in.Payload()
	if err != nil {
		return nil, invalid(err)
	}

	var resp models.TrainerCreated
	if err := s.client.Post(ctx, "/trainers", "", payload, &resp); err != nil {
		return nil, fmt.Errorf("sign up trainer: %w", err)
	}
	if resp.ID <= 0 {
		return nil, malformed("sign-up response missing id")
	}

	if err := s.persistSignUp(models.RoleTrainer, resp.Token, resp.ID); err != nil {
		return nil, err
	}
	return &resp.Trainer, nil
}

func (s *Service) persistSignUp(role models.Role, token string, id int64) error {
	if token == "" {
		s.logger.Debug("sign-up returned no token; login required", "role", role)
		return nil
	}
	if err := session.Save(s.store, session.Identity{Role: role, Token: token, UserID: id}); err != nil {
		return fmt.Errorf("save sign-up: %w", err)
	}
	return nil
}
