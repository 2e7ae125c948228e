package leadRepo

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

// Create inserts a new lead and returns its ID.
func (r *mongoLeadRepo) Create(ctx context.Context, lead *models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return "", fmt.Errorf("failed to create lead: %w", err)
	}
	return lead.ID, nil
}

// GetByID returns a lead by its ID.
func (r *mongoLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead %s: %w", id, err)
	}
	return &lead, nil
}

// Update replaces the stored fields of an existing lead.
func (r *mongoLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	lead.UpdatedAt = time.Now()
	filter := bson.M{"id": lead.ID}
	update := bson.M{"$set": lead}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", lead.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a lead by ID.
func (r *mongoLeadRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns leads, optionally filtered by status.
func (r *mongoLeadRepo) List(ctx context.Context, status string) ([]models.Lead, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	return leads, nil
}
