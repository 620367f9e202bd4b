package service

import (
	"context"
	"errors"
	"testing"

	"alcyxob/coach-diet/internal/diet"
	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/llm"
	"alcyxob/coach-diet/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- in-memory repositories ---

type memClientRepo struct {
	clients map[primitive.ObjectID]domain.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: make(map[primitive.ObjectID]domain.Client)}
}

func (r *memClientRepo) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	client.ID = primitive.NewObjectID()
	r.clients[client.ID] = *client
	return client.ID, nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &client, nil
}

func (r *memClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) Update(ctx context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return repository.ErrNotFound
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *memClientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

type memPlanRepo struct {
	plans     map[primitive.ObjectID][]domain.DietPlan
	insertErr error
}

func newMemPlanRepo() *memPlanRepo {
	return &memPlanRepo{plans: make(map[primitive.ObjectID][]domain.DietPlan)}
}

func (r *memPlanRepo) Insert(ctx context.Context, clientID primitive.ObjectID, plan domain.DietPlan) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.plans[clientID] = append(r.plans[clientID], plan)
	return nil
}

func (r *memPlanRepo) GetByID(ctx context.Context, planID string) (*domain.DietPlan, error) {
	for _, plans := range r.plans {
		for _, p := range plans {
			if p.ID == planID {
				return &p, nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memPlanRepo) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.DietPlan, error) {
	return r.plans[clientID], nil
}

func (r *memPlanRepo) DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) error {
	delete(r.plans, clientID)
	return nil
}

// --- gateway stub ---

type stubTextGenerator struct {
	response string
	err      error
}

func (s *stubTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func anaProfile() *domain.Client {
	return &domain.Client{
		Name:                "Ana",
		Age:                 28,
		Weight:              60,
		Height:              165,
		Gender:              domain.GenderFemale,
		Goal:                "Perder peso",
		DietaryRestrictions: "Ninguna",
		ActivityLevel:       "Moderado",
		MealsPerDay:         4,
	}
}

func setupPlanService(t *testing.T, textGen llm.TextGenerator) (PlanService, *memClientRepo, *memPlanRepo, primitive.ObjectID) {
	t.Helper()
	clientRepo := newMemClientRepo()
	planRepo := newMemPlanRepo()

	id, err := clientRepo.Create(context.Background(), anaProfile())
	require.NoError(t, err)

	svc := NewPlanService(clientRepo, planRepo, diet.NewGenerator(textGen, nil), nil)
	return svc, clientRepo, planRepo, id
}

func TestGeneratePlanWithoutCredentialServesFallback(t *testing.T) {
	svc, _, planRepo, clientID := setupPlanService(t, &stubTextGenerator{err: llm.ErrMissingAPIKey})

	result, err := svc.GeneratePlan(context.Background(), clientID)
	require.NoError(t, err, "a missing credential must never reach the caller as a failure")

	assert.Equal(t, domain.OriginFallback, result.Origin)
	fallback := diet.FallbackPlan()
	assert.Equal(t, fallback.Title, result.Plan.Title)
	assert.Equal(t, fallback.Meals, result.Plan.Meals)

	saved, err := planRepo.GetByClientID(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, saved, 1, "fallback plans are persisted like generated ones")
	assert.Equal(t, result.Plan.ID, saved[0].ID)
}

func TestGeneratePlanPersistsGeneratedPlan(t *testing.T) {
	response := `{"title":"Plan Ana","dailyCalories":1700,"meals":{
		"breakfast":{"name":"Tostadas","description":"","calories":350,"protein":14,"fat":9,"carbs":50},
		"lunch":{"name":"Pollo","description":"","calories":600,"protein":45,"fat":15,"carbs":55},
		"dinner":{"name":"Sopa","description":"","calories":400,"protein":20,"fat":10,"carbs":45},
		"snacks":[{"name":"Fruta","description":"","calories":90,"protein":0,"fat":0,"carbs":22}]
	},"groceryList":["Pan","Pollo"]}`
	svc, _, planRepo, clientID := setupPlanService(t, &stubTextGenerator{response: response})

	result, err := svc.GeneratePlan(context.Background(), clientID)
	require.NoError(t, err)

	assert.Equal(t, domain.OriginGenerated, result.Origin)
	assert.Equal(t, "Plan Ana", result.Plan.Title)

	saved, err := planRepo.GetByClientID(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
}

func TestGeneratePlanUnknownClientDoesNotTouchRepository(t *testing.T) {
	svc, _, planRepo, _ := setupPlanService(t, &stubTextGenerator{err: llm.ErrMissingAPIKey})

	_, err := svc.GeneratePlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, planRepo.plans)
}

func TestGeneratePlanSurfacesPersistenceFailure(t *testing.T) {
	svc, _, planRepo, clientID := setupPlanService(t, &stubTextGenerator{err: llm.ErrMissingAPIKey})
	planRepo.insertErr = errors.New("connection reset")

	_, err := svc.GeneratePlan(context.Background(), clientID)
	assert.ErrorIs(t, err, ErrPlanSaveFailed)
}

func TestGetPlansForClient(t *testing.T) {
	svc, _, _, clientID := setupPlanService(t, &stubTextGenerator{err: llm.ErrMissingAPIKey})

	_, err := svc.GeneratePlan(context.Background(), clientID)
	require.NoError(t, err)
	_, err = svc.GeneratePlan(context.Background(), clientID)
	require.NoError(t, err)

	plans, err := svc.GetPlansForClient(context.Background(), clientID)
	require.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.NotEqual(t, plans[0].ID, plans[1].ID, "assembled plans always get distinct identifiers")

	_, err = svc.GetPlansForClient(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrClientNotFound)
}
