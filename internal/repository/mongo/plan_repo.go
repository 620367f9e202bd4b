package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planCollectionName = "diet_plans"

// planDocument wraps an assembled plan with the owning client reference.
// The plan itself is stored as a single embedded document, which keeps the
// stored shape identical to what the pipeline produced.
type planDocument struct {
	ID         string             `bson:"_id"` // the plan's UUID
	ClientID   primitive.ObjectID `bson:"clientId"`
	InsertedAt time.Time          `bson:"insertedAt"`
	Plan       domain.DietPlan    `bson:"plan"`
}

// mongoPlanRepository implements repository.DietPlanRepository using MongoDB.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new instance of mongoPlanRepository.
func NewMongoPlanRepository(db *mongo.Database) repository.DietPlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Insert appends an assembled plan for the given client. Plans are never
// updated after insertion.
func (r *mongoPlanRepository) Insert(ctx context.Context, clientID primitive.ObjectID, plan domain.DietPlan) error {
	if plan.ID == "" {
		return errors.New("plan ID is required")
	}
	if clientID == primitive.NilObjectID {
		return errors.New("client ID is required")
	}

	doc := planDocument{
		ID:         plan.ID,
		ClientID:   clientID,
		InsertedAt: time.Now().UTC(),
		Plan:       plan,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// GetByID retrieves a single plan by its UUID.
func (r *mongoPlanRepository) GetByID(ctx context.Context, planID string) (*domain.DietPlan, error) {
	var doc planDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": planID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc.Plan, nil
}

// GetByClientID retrieves all plans saved for a client, newest first.
func (r *mongoPlanRepository) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.DietPlan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "insertedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []planDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	plans := make([]domain.DietPlan, 0, len(docs))
	for _, doc := range docs {
		plans = append(plans, doc.Plan)
	}
	return plans, nil
}

// DeleteByClientID removes every plan saved for a client. Used when the
// client profile itself is deleted.
func (r *mongoPlanRepository) DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"clientId": clientID})
	return err
}

// EnsurePlanIndexes creates the indexes the plan collection relies on.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "insertedAt", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("WARN: Failed to create plan indexes: %v", err)
	}
}
