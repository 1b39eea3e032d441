// ABOUTME: Drill creation and deletion for trainers.
package service

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
)

// CreateDrill creates a drill owned by the logged-in trainer.
func (s *Service) CreateDrill(ctx context.Context, who session.Identity, in models.NewDrill) (*models.Drill, error) {
	if err := requireRole(who, models.RoleTrainer); err != nil {
		return nil, err
	}
	in.TrainerID = who.UserID
	if err := in.Validate(); err != nil {
		return nil, invalid(err)
	}

	var resp models.DrillCreated
	if err := s.client.Post(ctx, "/drills", who.Token, in, &resp); err != nil {
		return nil, fmt.Errorf("create drill: %w", err)
	}
	if resp.ID <= 0 {
		return nil, malformed("created drill missing id")
	}

	// Some deployments answer with only {message, id}.
	d := resp.Drill
	if d.DrillType == "" {
		d.DrillType = in.DrillType
		d.Description = in.Description
		d.Level = in.Level
	}
	if d.TrainerID == 0 {
		d.TrainerID = in.TrainerID
	}
	return &d, nil
}

// DeleteDrill removes one of the trainer's drills.
func (s *Service) DeleteDrill(ctx context.Context, who session.Identity, drillID int64) error {
	if err := requireRole(who, models.RoleTrainer); err != nil {
		return err
	}
	if drillID <= 0 {
		return invalid(&models.FieldError{Field: "drill_id", Reason: "must be positive"})
	}
	if err := s.client.Delete(ctx, fmt.Sprintf("/drills/%d", drillID), who.Token, nil); err != nil {
		return fmt.Errorf("delete drill: %w", err)
	}
	return nil
}
