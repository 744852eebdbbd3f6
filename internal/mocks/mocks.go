package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"friendship-service/internal/engine"
	"friendship-service/internal/models"
	"friendship-service/internal/rabbitmq"
	"friendship-service/internal/repositories"
)

// MockRelationshipStore mocks RelationshipStore behavior for engine tests.
type MockRelationshipStore struct {
	mock.Mock
}

var _ repositories.RelationshipStore = (*MockRelationshipStore)(nil)

func (m *MockRelationshipStore) Create(ctx context.Context, rel *models.Relationship) error {
	args := m.Called(ctx, rel)
	return args.Error(0)
}

func (m *MockRelationshipStore) GetByPair(ctx context.Context, a, b int64) (*models.Relationship, error) {
	args := m.Called(ctx, a, b)
	var rel *models.Relationship
	if val := args.Get(0); val != nil {
		rel = val.(*models.Relationship)
	}
	return rel, args.Error(1)
}

func (m *MockRelationshipStore) Update(ctx context.Context, rel *models.Relationship, expected models.Status) error {
	args := m.Called(ctx, rel, expected)
	return args.Error(0)
}

func (m *MockRelationshipStore) DeleteByPair(ctx context.Context, a, b int64) error {
	args := m.Called(ctx, a, b)
	return args.Error(0)
}

func (m *MockRelationshipStore) ListAccepted(ctx context.Context, userID int64) ([]models.Relationship, error) {
	args := m.Called(ctx, userID)
	var rels []models.Relationship
	if val := args.Get(0); val != nil {
		rels = val.([]models.Relationship)
	}
	return rels, args.Error(1)
}

func (m *MockRelationshipStore) ListPendingIncoming(ctx context.Context, userID int64) ([]models.Relationship, error) {
	args := m.Called(ctx, userID)
	var rels []models.Relationship
	if val := args.Get(0); val != nil {
		rels = val.([]models.Relationship)
	}
	return rels, args.Error(1)
}

// MockDirectory mocks the account directory for engine and handler tests.
type MockDirectory struct {
	mock.Mock
}

var _ engine.Directory = (*MockDirectory)(nil)

func (m *MockDirectory) FindByID(ctx context.Context, id int64) (*models.UserSummary, error) {
	args := m.Called(ctx, id)
	var user *models.UserSummary
	if val := args.Get(0); val != nil {
		user = val.(*models.UserSummary)
	}
	return user, args.Error(1)
}

func (m *MockDirectory) SearchByText(ctx context.Context, term string, excludeID int64, limit int) ([]models.UserSummary, error) {
	args := m.Called(ctx, term, excludeID, limit)
	var users []models.UserSummary
	if val := args.Get(0); val != nil {
		users = val.([]models.UserSummary)
	}
	return users, args.Error(1)
}

// MockPublisher records published events without touching AMQP.
type MockPublisher struct {
	mock.Mock
}

var _ rabbitmq.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
