package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/coach-diet/internal/diet"
	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrPlanSaveFailed = errors.New("failed to save generated plan")

// PlanService coordinates diet plan generation and persistence for stored
// clients. Plans are saved only after successful assembly, which includes
// fallback-origin plans; a validation failure never touches the repository.
type PlanService interface {
	GeneratePlan(ctx context.Context, clientID primitive.ObjectID) (*diet.Result, error)
	GetPlansForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.DietPlan, error)
}

// planService implements the PlanService interface.
type planService struct {
	clientRepo repository.ClientRepository
	planRepo   repository.DietPlanRepository
	generator  *diet.Generator
	logger     *zap.Logger
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	clientRepo repository.ClientRepository,
	planRepo repository.DietPlanRepository,
	generator *diet.Generator,
	logger *zap.Logger,
) PlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &planService{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		generator:  generator,
		logger:     logger,
	}
}

// GeneratePlan loads the client, runs the generation pipeline and persists
// the assembled plan. The result is tagged with its origin so callers can
// tell a model-generated plan from the static fallback.
func (s *planService) GeneratePlan(ctx context.Context, clientID primitive.ObjectID) (*diet.Result, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	result, err := s.generator.Generate(ctx, client)
	if err != nil {
		// Only validation errors escape the generator.
		return nil, err
	}

	if err := s.planRepo.Insert(ctx, clientID, result.Plan); err != nil {
		s.logger.Error("generated plan could not be persisted",
			zap.String("clientId", clientID.Hex()),
			zap.String("planId", result.Plan.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPlanSaveFailed, err)
	}

	s.logger.Info("diet plan generated",
		zap.String("clientId", clientID.Hex()),
		zap.String("planId", result.Plan.ID),
		zap.String("origin", string(result.Origin)),
	)
	return result, nil
}

// GetPlansForClient lists the plans saved for a client, newest first.
func (s *planService) GetPlansForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.DietPlan, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.planRepo.GetByClientID(ctx, clientID)
}
