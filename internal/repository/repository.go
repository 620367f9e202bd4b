package repository

import (
	"context"

	"alcyxob/coach-diet/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ClientRepository defines the interface for interacting with client profiles.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DietPlanRepository defines the interface for interacting with saved diet
// plans. Plans are append-only: they are inserted once after assembly and
// never modified afterwards.
type DietPlanRepository interface {
	Insert(ctx context.Context, clientID primitive.ObjectID, plan domain.DietPlan) error
	GetByID(ctx context.Context, planID string) (*domain.DietPlan, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.DietPlan, error)
	DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) error
}
