package handlers

import (
	"context"
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"friendship-service/internal/engine"
	"friendship-service/internal/metrics"
	"friendship-service/internal/models"
	"friendship-service/internal/telemetry"
)

type FriendHandler struct {
	engine    *engine.Engine
	directory engine.Directory
	audit     *telemetry.AuditEmitter
}

func NewFriendHandler(eng *engine.Engine, directory engine.Directory, audit *telemetry.AuditEmitter) *FriendHandler {
	return &FriendHandler{engine: eng, directory: directory, audit: audit}
}

type sendRequestBody struct {
	ToUserID int64 `json:"to_user_id" binding:"required"`
}

// engineErrorStatus maps engine sentinels onto HTTP responses. Anything not
// in the taxonomy is an internal error.
func engineErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrInvalidPair):
		return nethttp.StatusBadRequest, "invalid user pair"
	case errors.Is(err, engine.ErrNotFound):
		return nethttp.StatusNotFound, "relationship not found"
	case errors.Is(err, engine.ErrBlocked):
		return nethttp.StatusConflict, "pair is blocked"
	case errors.Is(err, engine.ErrUnavailable):
		return nethttp.StatusServiceUnavailable, "store is busy, retry shortly"
	default:
		return nethttp.StatusInternalServerError, "internal error"
	}
}

func (h *FriendHandler) SendRequest(c *gin.Context) {
	requestID := requestIDFromHeader(c)
	userID := userIDFromContext(c)
	var body sendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.emitAudit(c.Request.Context(), "ERROR", "invalid request payload", requestID, userID)
		metrics.IncFriendRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if userID == nil {
		metrics.IncFriendRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	fromUserID := *userID

	ctx := c.Request.Context()
	if _, err := h.directory.FindByID(ctx, body.ToUserID); err != nil {
		h.emitAudit(ctx, "ERROR", "target user not found", requestID, userID)
		metrics.IncFriendRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusNotFound, gin.H{"error": "target user not found"})
		return
	}

	status, err := h.engine.SendRequest(ctx, fromUserID, body.ToUserID)
	if err != nil {
		code, msg := engineErrorStatus(err)
		h.emitAudit(ctx, "ERROR", msg, requestID, userID)
		metrics.IncFriendRequest(metrics.StatusFailed)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	h.emitAudit(ctx, "INFO", "Friend request sent to '"+strconv.FormatInt(body.ToUserID, 10)+"'", requestID, userID)
	metrics.IncFriendRequest(metrics.StatusSuccess)
	c.JSON(nethttp.StatusCreated, gin.H{"status": status})
}

func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	h.handleDecision(c, h.engine.Accept, "accept", metrics.IncFriendAccept)
}

func (h *FriendHandler) RejectRequest(c *gin.Context) {
	h.handleDecision(c, h.engine.Reject, "reject", metrics.IncFriendReject)
}

func (h *FriendHandler) handleDecision(c *gin.Context, action func(ctx context.Context, currentID, otherID int64) (models.Status, error), verb string, inc func(string)) {
	otherID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		inc(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	requestID := requestIDFromHeader(c)
	userID := userIDFromContext(c)
	if userID == nil {
		inc(metrics.StatusFailed)
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	status, err := action(ctx, *userID, otherID)
	if err != nil {
		code, msg := engineErrorStatus(err)
		if errors.Is(err, engine.ErrNotFound) {
			msg = "no pending request to " + verb
		}
		h.emitAudit(ctx, "ERROR", msg, requestID, userID)
		inc(metrics.StatusFailed)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	h.emitAudit(ctx, "INFO", "Friend request "+string(status), requestID, userID)
	inc(metrics.StatusSuccess)
	c.JSON(nethttp.StatusOK, gin.H{"status": status})
}

func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	otherID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		metrics.IncFriendRemove(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	requestID := requestIDFromHeader(c)
	userID := userIDFromContext(c)
	if userID == nil {
		metrics.IncFriendRemove(metrics.StatusFailed)
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	if err := h.engine.Remove(ctx, *userID, otherID); err != nil {
		code, msg := engineErrorStatus(err)
		h.emitAudit(ctx, "ERROR", msg, requestID, userID)
		metrics.IncFriendRemove(metrics.StatusFailed)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	h.emitAudit(ctx, "INFO", "Relationship with '"+strconv.FormatInt(otherID, 10)+"' removed", requestID, userID)
	metrics.IncFriendRemove(metrics.StatusSuccess)
	c.Status(nethttp.StatusNoContent)
}

func (h *FriendHandler) BlockUser(c *gin.Context) {
	otherID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		metrics.IncFriendBlock(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	requestID := requestIDFromHeader(c)
	userID := userIDFromContext(c)
	if userID == nil {
		metrics.IncFriendBlock(metrics.StatusFailed)
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	status, err := h.engine.Block(ctx, *userID, otherID)
	if err != nil {
		code, msg := engineErrorStatus(err)
		if errors.Is(err, engine.ErrBlocked) {
			msg = "already blocked by the other user"
		}
		h.emitAudit(ctx, "ERROR", msg, requestID, userID)
		metrics.IncFriendBlock(metrics.StatusFailed)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	h.emitAudit(ctx, "INFO", "User '"+strconv.FormatInt(otherID, 10)+"' blocked", requestID, userID)
	metrics.IncFriendBlock(metrics.StatusSuccess)
	c.JSON(nethttp.StatusOK, gin.H{"status": status})
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	ids, err := h.engine.ListFriends(c.Request.Context(), userID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to fetch friends"})
		return
	}

	resp := make([]*models.UserSummary, 0, len(ids))
	for _, fid := range ids {
		friend, err := h.directory.FindByID(c.Request.Context(), fid)
		if err != nil {
			if errors.Is(err, engine.ErrNotFound) {
				// Directory lost the account; skip rather than fail the page.
				continue
			}
			c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch friend info"})
			return
		}
		resp = append(resp, friend)
	}

	c.JSON(nethttp.StatusOK, resp)
}

func (h *FriendHandler) ListIncoming(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	requests, err := h.engine.ListIncoming(c.Request.Context(), userID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}

	resp := make([]gin.H, 0, len(requests))
	for _, req := range requests {
		sender, err := h.directory.FindByID(c.Request.Context(), req.RequesterID)
		if err != nil {
			if errors.Is(err, engine.ErrNotFound) {
				continue
			}
			c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch requester info"})
			return
		}
		resp = append(resp, gin.H{
			"id":           req.ID,
			"from_user_id": req.RequesterID,
			"from_handle":  sender.Handle,
			"status":       req.Status,
			"since":        req.Since,
		})
	}

	c.JSON(nethttp.StatusOK, resp)
}

func (h *FriendHandler) GetStatus(c *gin.Context) {
	otherID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	userID := userIDFromContext(c)
	if userID == nil {
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	view, err := h.engine.StatusBetween(c.Request.Context(), *userID, otherID)
	if err != nil {
		code, msg := engineErrorStatus(err)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	c.JSON(nethttp.StatusOK, gin.H{"status": view})
}

func (h *FriendHandler) emitAudit(ctx context.Context, level, text, requestID string, userID *int64) {
	if h.audit == nil {
		return
	}
	h.audit.EmitAudit(ctx, level, text, requestID, userID)
}
