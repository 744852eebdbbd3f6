package handlers

import (
	"errors"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"friendship-service/internal/engine"
	"friendship-service/internal/models"
)

const defaultSearchLimit = 20

type UserHandler struct {
	engine    *engine.Engine
	directory engine.Directory
}

func NewUserHandler(eng *engine.Engine, directory engine.Directory) *UserHandler {
	return &UserHandler{engine: eng, directory: directory}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	ctx := c.Request.Context()
	user, err := h.directory.FindByID(ctx, userID)
	if err != nil {
		c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch user"})
		return
	}

	friendIDs, err := h.engine.ListFriends(ctx, userID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load friends"})
		return
	}

	incoming, err := h.engine.ListIncoming(ctx, userID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load friend requests"})
		return
	}

	friendUsers := make([]*models.UserSummary, 0, len(friendIDs))
	for _, fid := range friendIDs {
		friend, err := h.directory.FindByID(ctx, fid)
		if err != nil {
			if errors.Is(err, engine.ErrNotFound) {
				continue
			}
			c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch friend info"})
			return
		}
		friendUsers = append(friendUsers, friend)
	}

	incomingWithUsers := make([]gin.H, 0, len(incoming))
	for _, req := range incoming {
		sender, err := h.directory.FindByID(ctx, req.RequesterID)
		if err != nil {
			if errors.Is(err, engine.ErrNotFound) {
				continue
			}
			c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch requester info"})
			return
		}
		incomingWithUsers = append(incomingWithUsers, gin.H{
			"id":           req.ID,
			"from_user_id": req.RequesterID,
			"from_handle":  sender.Handle,
			"status":       req.Status,
			"since":        req.Since,
		})
	}

	c.JSON(nethttp.StatusOK, gin.H{
		"id":                user.ID,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"handle":            user.Handle,
		"email":             user.Email,
		"friends":           friendUsers,
		"incoming_requests": incomingWithUsers,
	})
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.directory.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			c.JSON(nethttp.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch user"})
		return
	}

	resp := gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"handle":     user.Handle,
		"email":      user.Email,
	}

	if viewerID := userIDFromContext(c); viewerID != nil && *viewerID != id {
		view, err := h.engine.StatusBetween(c.Request.Context(), *viewerID, id)
		if err == nil {
			resp["relationship"] = view
		}
	}

	c.JSON(nethttp.StatusOK, resp)
}

func (h *UserHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "missing search term"})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	hits, err := h.engine.SearchWithRelationship(c.Request.Context(), term, userID, limit)
	if err != nil {
		c.JSON(nethttp.StatusBadGateway, gin.H{"error": "search failed"})
		return
	}

	resp := make([]gin.H, 0, len(hits))
	for _, hit := range hits {
		resp = append(resp, gin.H{
			"id":           hit.User.ID,
			"first_name":   hit.User.FirstName,
			"last_name":    hit.User.LastName,
			"handle":       hit.User.Handle,
			"relationship": hit.Relationship,
		})
	}

	c.JSON(nethttp.StatusOK, resp)
}
