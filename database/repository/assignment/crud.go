package assignmentRepo

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

// ErrNotFound is returned when no assignment matches the requested ID.
var ErrNotFound = errors.New("assignment not found")

// Create inserts a new assignment record and returns its ID.
func (r *mongoAssignmentRepo) Create(ctx context.Context, assignment models.Assignment) (string, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	assignment.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, assignment); err != nil {
		return "", fmt.Errorf("failed to create assignment: %w", err)
	}
	return assignment.ID, nil
}

// GetByID returns an assignment by its ID.
func (r *mongoAssignmentRepo) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch assignment %s: %w", id, err)
	}
	return &assignment, nil
}

// ListByLeadID fetches all assignments associated with a specific lead.
func (r *mongoAssignmentRepo) ListByLeadID(ctx context.Context, leadID string) ([]models.Assignment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"leadId": leadID})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for lead %s: %w", leadID, err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}

// ListByInspector fetches an inspector's assignments for a given date.
func (r *mongoAssignmentRepo) ListByInspector(ctx context.Context, inspectorEmail, date string) ([]models.Assignment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"inspectorEmail": inspectorEmail, "preferredDate": date})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for %s: %w", inspectorEmail, err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}
