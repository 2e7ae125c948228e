package allocationRepo

import (
	"context"

	"inspectra/config"
	"inspectra/database"
	"inspectra/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type WorkAllocationRepository interface {
	Create(ctx context.Context, allocation models.WorkAllocation) (string, error)
	ListByStaffAndDate(ctx context.Context, staffID, date string) ([]models.WorkAllocation, error)
}

type mongoAllocationRepo struct {
	coll *mongo.Collection
}

// NewMongoAllocationRepo returns a new WorkAllocationRepository instance using MongoDB.
func NewMongoAllocationRepo() WorkAllocationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAllocationRepo{
		coll: db.Collection("work_allocations"),
	}
}
