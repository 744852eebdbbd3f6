package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"friendship-service/internal/engine"
	"friendship-service/internal/mocks"
	"friendship-service/internal/models"
)

func setupFriendsRouter(handler *FriendHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Next()
	})
	r.POST("/friends/requests", handler.SendRequest)
	r.POST("/friends/requests/:user_id/accept", handler.AcceptRequest)
	r.POST("/friends/requests/:user_id/reject", handler.RejectRequest)
	r.DELETE("/friends/:user_id", handler.RemoveFriend)
	r.POST("/friends/:user_id/block", handler.BlockUser)
	r.GET("/friends", handler.ListFriends)
	r.GET("/friends/requests/incoming", handler.ListIncoming)
	r.GET("/friends/status/:user_id", handler.GetStatus)
	return r
}

func newFriendsFixture() (*mocks.MockRelationshipStore, *mocks.MockDirectory, *gin.Engine) {
	store := new(mocks.MockRelationshipStore)
	directory := new(mocks.MockDirectory)
	eng := engine.New(store, directory, nil, nil)
	router := setupFriendsRouter(NewFriendHandler(eng, directory, nil))
	return store, directory, router
}

func TestSendRequestEmptyBodyReturnsBadRequest(t *testing.T) {
	_, _, router := newFriendsFixture()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendRequestCreated(t *testing.T) {
	store, directory, router := newFriendsFixture()

	directory.On("FindByID", mock.Anything, int64(2)).Return(&models.UserSummary{ID: 2, Handle: "bob"}, nil).Once()
	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(nil, sql.ErrNoRows).Once()
	store.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Relationship).ID = 10
	}).Once()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests", bytes.NewBufferString(`{"to_user_id":2}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pending", resp["status"])

	store.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestSendRequestTargetMissing(t *testing.T) {
	_, directory, router := newFriendsFixture()

	directory.On("FindByID", mock.Anything, int64(99)).Return(nil, engine.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests", bytes.NewBufferString(`{"to_user_id":99}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	directory.AssertExpectations(t)
}

func TestSendRequestBlockedPairConflict(t *testing.T) {
	store, directory, router := newFriendsFixture()

	directory.On("FindByID", mock.Anything, int64(2)).Return(&models.UserSummary{ID: 2}, nil).Once()
	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(&models.Relationship{
		ID: 10, RequesterID: 2, RecipientID: 1, Status: models.StatusBlocked, Since: time.Now(),
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests", bytes.NewBufferString(`{"to_user_id":2}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	store.AssertExpectations(t)
}

func TestAcceptRequestOK(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(&models.Relationship{
		ID: 10, RequesterID: 2, RecipientID: 1, Status: models.StatusPending, Since: time.Now(),
	}, nil).Once()
	store.On("Update", mock.Anything, mock.Anything, models.StatusPending).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests/2/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "accepted", resp["status"])

	store.AssertExpectations(t)
}

func TestAcceptRequestInvalidID(t *testing.T) {
	_, _, router := newFriendsFixture()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests/abc/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptRequestNotFound(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(nil, sql.ErrNoRows).Once()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests/2/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	store.AssertExpectations(t)
}

func TestRejectRequestOK(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(&models.Relationship{
		ID: 10, RequesterID: 2, RecipientID: 1, Status: models.StatusPending, Since: time.Now(),
	}, nil).Once()
	store.On("Update", mock.Anything, mock.Anything, models.StatusPending).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/friends/requests/2/reject", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestRemoveFriendNoContent(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(&models.Relationship{
		ID: 10, RequesterID: 1, RecipientID: 2, Status: models.StatusAccepted, Since: time.Now(),
	}, nil).Once()
	store.On("DeleteByPair", mock.Anything, int64(1), int64(2)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/friends/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	store.AssertExpectations(t)
}

func TestRemoveFriendNotFound(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(nil, sql.ErrNoRows).Once()

	req := httptest.NewRequest(http.MethodDelete, "/friends/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	store.AssertExpectations(t)
}

func TestBlockUserOK(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(nil, sql.ErrNoRows).Once()
	store.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Relationship).ID = 11
	}).Once()

	req := httptest.NewRequest(http.MethodPost, "/friends/2/block", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "blocked", resp["status"])

	store.AssertExpectations(t)
}

func TestListFriendsHydratesUsers(t *testing.T) {
	store, directory, router := newFriendsFixture()

	store.On("ListAccepted", mock.Anything, int64(1)).Return([]models.Relationship{
		{ID: 10, RequesterID: 1, RecipientID: 2, Status: models.StatusAccepted},
		{ID: 11, RequesterID: 3, RecipientID: 1, Status: models.StatusAccepted},
	}, nil).Once()
	directory.On("FindByID", mock.Anything, int64(2)).Return(&models.UserSummary{ID: 2, Handle: "bob"}, nil).Once()
	directory.On("FindByID", mock.Anything, int64(3)).Return(&models.UserSummary{ID: 3, Handle: "carol"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/friends", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []models.UserSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "bob", resp[0].Handle)
	assert.Equal(t, "carol", resp[1].Handle)

	store.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestListIncomingHydratesSender(t *testing.T) {
	store, directory, router := newFriendsFixture()

	store.On("ListPendingIncoming", mock.Anything, int64(1)).Return([]models.Relationship{
		{ID: 7, RequesterID: 3, RecipientID: 1, Status: models.StatusPending},
	}, nil).Once()
	directory.On("FindByID", mock.Anything, int64(3)).Return(&models.UserSummary{ID: 3, Handle: "carol"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/friends/requests/incoming", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, float64(7), resp[0]["id"])
	assert.Equal(t, float64(3), resp[0]["from_user_id"])
	assert.Equal(t, "carol", resp[0]["from_handle"])

	store.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestGetStatusReportsView(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(&models.Relationship{
		ID: 10, RequesterID: 2, RecipientID: 1, Status: models.StatusPending,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/friends/status/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pending_incoming", resp["status"])

	store.AssertExpectations(t)
}

func TestGetStatusNoRecordIsNone(t *testing.T) {
	store, _, router := newFriendsFixture()

	store.On("GetByPair", mock.Anything, int64(1), int64(2)).Return(nil, sql.ErrNoRows).Once()

	req := httptest.NewRequest(http.MethodGet, "/friends/status/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "none", resp["status"])

	store.AssertExpectations(t)
}
