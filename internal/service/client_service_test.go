package service

import (
	"context"
	"testing"

	"alcyxob/coach-diet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupClientService() (ClientService, *memClientRepo, *memPlanRepo) {
	clientRepo := newMemClientRepo()
	planRepo := newMemPlanRepo()
	return NewClientService(clientRepo, planRepo, nil), clientRepo, planRepo
}

func TestCreateClientValidation(t *testing.T) {
	svc, _, _ := setupClientService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.Client)
	}{
		{"missing name", func(c *domain.Client) { c.Name = "" }},
		{"zero age", func(c *domain.Client) { c.Age = 0 }},
		{"negative weight", func(c *domain.Client) { c.Weight = -1 }},
		{"unknown gender", func(c *domain.Client) { c.Gender = "robot" }},
		{"too few meals", func(c *domain.Client) { c.MealsPerDay = 2 }},
		{"too many meals", func(c *domain.Client) { c.MealsPerDay = 7 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := anaProfile()
			tc.mutate(client)
			_, err := svc.CreateClient(ctx, client)
			assert.ErrorIs(t, err, ErrInvalidClientData)
		})
	}
}

func TestCreateClientDefaultsMealsPerDay(t *testing.T) {
	svc, _, _ := setupClientService()

	client := anaProfile()
	client.MealsPerDay = 0
	created, err := svc.CreateClient(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMealsPerDay, created.MealsPerDay)
	assert.False(t, created.ID.IsZero())
}

func TestUpdateClientUnknownID(t *testing.T) {
	svc, _, _ := setupClientService()

	client := anaProfile()
	client.ID = primitive.NewObjectID()
	_, err := svc.UpdateClient(context.Background(), client)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClientCascadesPlans(t *testing.T) {
	svc, clientRepo, planRepo := setupClientService()
	ctx := context.Background()

	id, err := clientRepo.Create(ctx, anaProfile())
	require.NoError(t, err)
	require.NoError(t, planRepo.Insert(ctx, id, domain.DietPlan{ID: "plan-1"}))

	require.NoError(t, svc.DeleteClient(ctx, id))

	_, err = clientRepo.GetByID(ctx, id)
	assert.Error(t, err)
	plans, err := planRepo.GetByClientID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestDeleteClientUnknownID(t *testing.T) {
	svc, _, _ := setupClientService()
	err := svc.DeleteClient(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrClientNotFound)
}
