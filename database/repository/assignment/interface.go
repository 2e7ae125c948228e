package assignmentRepo

import (
	"context"

	"inspectra/config"
	"inspectra/database"
	"inspectra/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment models.Assignment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	ListByLeadID(ctx context.Context, leadID string) ([]models.Assignment, error)
	ListByInspector(ctx context.Context, inspectorEmail, date string) ([]models.Assignment, error)
}

type mongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo returns a new AssignmentRepository instance using MongoDB.
func NewMongoAssignmentRepo() AssignmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAssignmentRepo{
		coll: db.Collection("assignments"),
	}
}
