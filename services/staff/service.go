package staff

import (
	"context"
	"fmt"

	staffRepo "inspectra/database/repository/staff"
	"inspectra/models"
)

// Service exposes the staff directory.
type Service interface {
	Create(ctx context.Context, staff *models.Staff) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	ListActive(ctx context.Context) ([]models.Staff, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Repo staffRepo.StaffRepository
}

func (s *DefaultService) Create(ctx context.Context, staff *models.Staff) (*models.Staff, error) {
	if staff.DisplayName == "" || staff.Email == "" {
		return nil, fmt.Errorf("display name and email are required")
	}
	staff.Active = true
	if _, err := s.Repo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *DefaultService) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return s.Repo.GetByEmail(ctx, email)
}

func (s *DefaultService) ListActive(ctx context.Context) ([]models.Staff, error) {
	return s.Repo.ListActive(ctx)
}
