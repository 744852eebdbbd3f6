package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"friendship-service/internal/engine"
	"friendship-service/internal/mocks"
	"friendship-service/internal/models"
)

func setupUsersRouter(handler *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Next()
	})
	r.GET("/users/me", handler.GetMe)
	r.GET("/users/search", handler.Search)
	r.GET("/users/:id", handler.GetUserByID)
	return r
}

func newUsersFixture() (*mocks.MockRelationshipStore, *mocks.MockDirectory, *gin.Engine) {
	store := new(mocks.MockRelationshipStore)
	directory := new(mocks.MockDirectory)
	eng := engine.New(store, directory, nil, nil)
	router := setupUsersRouter(NewUserHandler(eng, directory))
	return store, directory, router
}

func TestGetMeComposesProfile(t *testing.T) {
	store, directory, router := newUsersFixture()

	directory.On("FindByID", mock.Anything, int64(1)).Return(&models.UserSummary{ID: 1, Handle: "me"}, nil).Once()
	store.On("ListAccepted", mock.Anything, int64(1)).Return([]models.Relationship{
		{ID: 10, RequesterID: 1, RecipientID: 2, Status: models.StatusAccepted},
	}, nil).Once()
	store.On("ListPendingIncoming", mock.Anything, int64(1)).Return([]models.Relationship{
		{ID: 7, RequesterID: 3, RecipientID: 1, Status: models.StatusPending},
	}, nil).Once()
	directory.On("FindByID", mock.Anything, int64(2)).Return(&models.UserSummary{ID: 2, Handle: "bob"}, nil).Once()
	directory.On("FindByID", mock.Anything, int64(3)).Return(&models.UserSummary{ID: 3, Handle: "carol"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, float64(1), resp["id"])
	assert.Equal(t, "me", resp["handle"])

	friends := resp["friends"].([]any)
	require.Len(t, friends, 1)
	friendEntry := friends[0].(map[string]any)
	assert.Equal(t, float64(2), friendEntry["id"])

	incoming := resp["incoming_requests"].([]any)
	require.Len(t, incoming, 1)
	incomingEntry := incoming[0].(map[string]any)
	assert.Equal(t, float64(7), incomingEntry["id"])
	assert.Equal(t, "carol", incomingEntry["from_handle"])

	store.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestGetUserByIDInvalidID(t *testing.T) {
	_, _, router := newUsersFixture()

	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserByIDNotFound(t *testing.T) {
	_, directory, router := newUsersFixture()

	directory.On("FindByID", mock.Anything, int64(42)).Return(nil, engine.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	directory.AssertExpectations(t)
}

func TestGetUserByIDAnnotatesRelationship(t *testing.T) {
	store, directory, router := newUsersFixture()

	directory.On("FindByID", mock.Anything, int64(42)).Return(&models.UserSummary{ID: 42, Handle: "dave"}, nil).Once()
	store.On("GetByPair", mock.Anything, int64(1), int64(42)).Return(&models.Relationship{
		ID: 10, RequesterID: 1, RecipientID: 42, Status: models.StatusAccepted,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "dave", resp["handle"])
	assert.Equal(t, "friends", resp["relationship"])

	store.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestSearchMissingTerm(t *testing.T) {
	_, _, router := newUsersFixture()

	req := httptest.NewRequest(http.MethodGet, "/users/search", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchAnnotatesHits(t *testing.T) {
	store, directory, router := newUsersFixture()

	directory.On("SearchByText", mock.Anything, "bo", int64(1), 20).Return([]models.UserSummary{
		{ID: 2, Handle: "bob"},
		{ID: 5, Handle: "bonnie"},
	}, nil).Once()
	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(&models.Relationship{
		ID: 10, RequesterID: 1, RecipientID: 2, Status: models.StatusPending,
	}, nil).Once()
	store.On("GetByPair", mock.Anything, int64(1), int64(5)).Return(nil, sql.ErrNoRows).Once()

	req := httptest.NewRequest(http.MethodGet, "/users/search?q=bo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "bob", resp[0]["handle"])
	assert.Equal(t, "pending_outgoing", resp[0]["relationship"])
	assert.Equal(t, "bonnie", resp[1]["handle"])
	assert.Equal(t, "none", resp[1]["relationship"])

	store.AssertExpectations(t)
	directory.AssertExpectations(t)
}
