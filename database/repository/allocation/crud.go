package allocationRepo

import (
	"context"
	"fmt"
	"time"

	"inspectra/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new work-allocation record and returns its ID.
func (r *mongoAllocationRepo) Create(ctx context.Context, allocation models.WorkAllocation) (string, error) {
	if allocation.ID == "" {
		allocation.ID = uuid.New().String()
	}
	allocation.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, allocation); err != nil {
		return "", fmt.Errorf("failed to create work allocation: %w", err)
	}
	return allocation.ID, nil
}

// ListByStaffAndDate fetches a staff member's work allocations for a date.
func (r *mongoAllocationRepo) ListByStaffAndDate(ctx context.Context, staffID, date string) ([]models.WorkAllocation, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"staffId": staffID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to list work allocations for staff %s: %w", staffID, err)
	}
	defer cursor.Close(ctx)

	var allocations []models.WorkAllocation
	if err := cursor.All(ctx, &allocations); err != nil {
		return nil, fmt.Errorf("failed to decode work allocations: %w", err)
	}
	return allocations, nil
}
