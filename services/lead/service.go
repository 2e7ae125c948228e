package lead

import (
	"context"
	"fmt"

	leadRepo "inspectra/database/repository/lead"
	"inspectra/models"
)

// Service exposes lead intake and CRUD over the record store.
type Service interface {
	Create(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	Update(ctx context.Context, id string, patch models.LeadPatch) (*models.Lead, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status string) ([]models.Lead, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Repo leadRepo.LeadRepository
}

func (s *DefaultService) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if lead.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if lead.Status == "" {
		lead.Status = "New"
	}
	if _, err := s.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update fetches the stored lead and merges the patch over it; absent patch
// fields leave stored values untouched.
func (s *DefaultService) Update(ctx context.Context, id string, patch models.LeadPatch) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(lead)
	if err := s.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultService) List(ctx context.Context, status string) ([]models.Lead, error) {
	return s.Repo.List(ctx, status)
}
