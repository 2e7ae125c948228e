package staffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inspectra/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new staff record and returns its ID.
func (r *mongoStaffRepo) Create(ctx context.Context, staff *models.Staff) (string, error) {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return "", fmt.Errorf("failed to create staff record: %w", err)
	}
	return staff.ID, nil
}

// GetByEmail resolves the staff record for an inspector's email.
func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch staff record for %s: %w", email, err)
	}
	return &staff, nil
}

// ListActive returns all active staff records.
func (r *mongoStaffRepo) ListActive(ctx context.Context) ([]models.Staff, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}
