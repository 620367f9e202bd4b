package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientData = errors.New("invalid client data")
)

// ClientService manages client profiles.
type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id primitive.ObjectID) error
}

// clientService implements the ClientService interface.
type clientService struct {
	clientRepo repository.ClientRepository
	planRepo   repository.DietPlanRepository
	logger     *zap.Logger
}

// NewClientService creates a new instance of clientService.
func NewClientService(
	clientRepo repository.ClientRepository,
	planRepo repository.DietPlanRepository,
	logger *zap.Logger,
) ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &clientService{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

// CreateClient validates and stores a new client profile.
func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := validateClient(client); err != nil {
		return nil, err
	}

	id, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	client.ID = id

	s.logger.Info("client created",
		zap.String("clientId", id.Hex()),
		zap.String("name", client.Name),
	)
	return client, nil
}

// GetClient retrieves a single client profile.
func (s *clientService) GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves all client profiles.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

// UpdateClient validates and stores changes to an existing profile.
func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.ID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidClientData)
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.clientRepo.GetByID(ctx, client.ID)
}

// DeleteClient removes a client profile and cascades to the client's saved
// plans.
func (s *clientService) DeleteClient(ctx context.Context, id primitive.ObjectID) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	if err := s.planRepo.DeleteByClientID(ctx, id); err != nil {
		// The profile is gone; orphaned plans are only a cleanup concern.
		s.logger.Error("failed to delete plans for removed client",
			zap.String("clientId", id.Hex()),
			zap.Error(err),
		)
	}

	s.logger.Info("client deleted", zap.String("clientId", id.Hex()))
	return nil
}

func validateClient(client *domain.Client) error {
	if client == nil {
		return fmt.Errorf("%w: profile is missing", ErrInvalidClientData)
	}
	if client.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidClientData)
	}
	if client.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidClientData)
	}
	if client.Weight <= 0 || client.Height <= 0 {
		return fmt.Errorf("%w: weight and height must be positive", ErrInvalidClientData)
	}
	switch client.Gender {
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidClientData, client.Gender)
	}
	if client.MealsPerDay == 0 {
		client.MealsPerDay = domain.DefaultMealsPerDay
	}
	if client.MealsPerDay < 3 || client.MealsPerDay > 6 {
		return fmt.Errorf("%w: mealsPerDay must be between 3 and 6", ErrInvalidClientData)
	}
	return nil
}
