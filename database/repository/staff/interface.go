package staffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inspectra/config"
	"inspectra/database"
	"inspectra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no staff record matches the lookup. The
// assignment saga relies on this to surface "staff record not found" as a
// named failure rather than a generic error.
var ErrNotFound = errors.New("staff record not found")

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	ListActive(ctx context.Context) ([]models.Staff, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo returns a new StaffRepository instance using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoStaffRepo{coll: db.Collection("staff")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *mongoStaffRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
