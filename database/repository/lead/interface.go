package leadRepo

import (
	"context"
	"errors"

	"inspectra/config"
	"inspectra/database"
	"inspectra/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no lead matches the requested ID.
var ErrNotFound = errors.New("lead not found")

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) (string, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status string) ([]models.Lead, error)
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a new LeadRepository instance using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoLeadRepo{
		coll: db.Collection("leads"),
	}
}
