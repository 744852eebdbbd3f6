package engine

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"friendship-service/internal/cache"
	"friendship-service/internal/models"
	"friendship-service/internal/rabbitmq"
	"friendship-service/internal/repositories"
)

var (
	ErrInvalidPair = errors.New("cannot relate a user to themselves")
	ErrNotFound    = errors.New("relationship not found")
	ErrBlocked     = errors.New("pair is blocked")
	ErrUnavailable = errors.New("relationship store contention, retries exhausted")
)

// maxAttempts bounds re-reads after a duplicate-key or compare-and-swap race.
const maxAttempts = 3

// Routing keys for domain events.
const (
	EventRequestCreated  = "friend.request.created"
	EventRequestAccepted = "friend.request.accepted"
	EventRequestRejected = "friend.request.rejected"
	EventRemoved         = "friendship.removed"
	EventBlocked         = "friend.blocked"
)

// Directory is the account-directory collaborator. The engine never owns user
// records; it only resolves and searches them here.
type Directory interface {
	FindByID(ctx context.Context, id int64) (*models.UserSummary, error)
	SearchByText(ctx context.Context, term string, excludeID int64, limit int) ([]models.UserSummary, error)
}

// Engine owns the lifecycle of relationship records: it is the only writer,
// and every mutation is an atomic read-modify-write on the canonical pair.
type Engine struct {
	store     repositories.RelationshipStore
	directory Directory
	publisher rabbitmq.Publisher
	cache     cache.RelationshipCache
	now       func() time.Time
}

func New(store repositories.RelationshipStore, directory Directory, publisher rabbitmq.Publisher, relCache cache.RelationshipCache) *Engine {
	if relCache == nil {
		relCache = cache.NewNoop()
	}
	return &Engine{
		store:     store,
		directory: directory,
		publisher: publisher,
		cache:     relCache,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SendRequest applies the send transition for the pair: creates a pending
// record, is idempotent on re-send, auto-accepts a cross request, reopens a
// rejected pair with the new direction, and refuses blocked pairs. It returns
// the pair's resulting status.
func (e *Engine) SendRequest(ctx context.Context, fromID, toID int64) (models.Status, error) {
	if err := validatePair(fromID, toID); err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		rel, err := e.store.GetByPair(ctx, fromID, toID)
		if errors.Is(err, sql.ErrNoRows) {
			created := &models.Relationship{
				RequesterID: fromID,
				RecipientID: toID,
				Status:      models.StatusPending,
				Since:       e.now(),
			}
			if err := e.store.Create(ctx, created); err != nil {
				if errors.Is(err, repositories.ErrDuplicatePair) {
					// Lost the race to another writer; re-read and
					// reinterpret, this is the cross-request path.
					continue
				}
				return "", err
			}
			e.invalidate(ctx, fromID, toID)
			e.publish(ctx, EventRequestCreated, map[string]any{
				"relationship_id": created.ID,
				"requester_id":    fromID,
				"recipient_id":    toID,
			})
			return models.StatusPending, nil
		}
		if err != nil {
			return "", err
		}

		switch rel.Status {
		case models.StatusPending:
			if rel.RequesterID == fromID {
				return models.StatusPending, nil
			}
			// The other side already asked; this send completes the match.
			upd := *rel
			upd.Status = models.StatusAccepted
			upd.Since = e.now()
			if err := e.store.Update(ctx, &upd, models.StatusPending); err != nil {
				if errors.Is(err, repositories.ErrStale) {
					continue
				}
				return "", err
			}
			e.invalidate(ctx, fromID, toID)
			e.publish(ctx, EventRequestAccepted, map[string]any{
				"relationship_id": rel.ID,
				"requester_id":    rel.RequesterID,
				"recipient_id":    rel.RecipientID,
			})
			return models.StatusAccepted, nil
		case models.StatusAccepted:
			return models.StatusAccepted, nil
		case models.StatusRejected:
			upd := *rel
			upd.RequesterID = fromID
			upd.RecipientID = toID
			upd.Status = models.StatusPending
			upd.Since = e.now()
			if err := e.store.Update(ctx, &upd, models.StatusRejected); err != nil {
				if errors.Is(err, repositories.ErrStale) {
					continue
				}
				return "", err
			}
			e.invalidate(ctx, fromID, toID)
			e.publish(ctx, EventRequestCreated, map[string]any{
				"relationship_id": rel.ID,
				"requester_id":    fromID,
				"recipient_id":    toID,
			})
			return models.StatusPending, nil
		case models.StatusBlocked:
			return "", ErrBlocked
		}
	}

	return "", ErrUnavailable
}

// Accept completes a pending request. Only the recipient may accept; any
// other shape of the pair reports ErrNotFound, a blocked pair ErrBlocked.
func (e *Engine) Accept(ctx context.Context, currentID, otherID int64) (models.Status, error) {
	if err := validatePair(currentID, otherID); err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		rel, err := e.store.GetByPair(ctx, currentID, otherID)
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", err
		}
		if rel.Status == models.StatusBlocked {
			return "", ErrBlocked
		}
		if rel.Status != models.StatusPending || rel.RequesterID != otherID {
			return "", ErrNotFound
		}

		upd := *rel
		upd.Status = models.StatusAccepted
		upd.Since = e.now()
		if err := e.store.Update(ctx, &upd, models.StatusPending); err != nil {
			if errors.Is(err, repositories.ErrStale) {
				continue
			}
			return "", err
		}
		e.invalidate(ctx, currentID, otherID)
		e.publish(ctx, EventRequestAccepted, map[string]any{
			"relationship_id": rel.ID,
			"requester_id":    rel.RequesterID,
			"recipient_id":    rel.RecipientID,
		})
		return models.StatusAccepted, nil
	}

	return "", ErrUnavailable
}

// Reject declines a pending request. The record stays around as rejected so a
// later send can reopen the pair.
func (e *Engine) Reject(ctx context.Context, currentID, otherID int64) (models.Status, error) {
	if err := validatePair(currentID, otherID); err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		rel, err := e.store.GetByPair(ctx, currentID, otherID)
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", err
		}
		if rel.Status == models.StatusBlocked {
			return "", ErrBlocked
		}
		if rel.Status != models.StatusPending || rel.RequesterID != otherID {
			return "", ErrNotFound
		}

		upd := *rel
		upd.Status = models.StatusRejected
		upd.Since = e.now()
		if err := e.store.Update(ctx, &upd, models.StatusPending); err != nil {
			if errors.Is(err, repositories.ErrStale) {
				continue
			}
			return "", err
		}
		e.invalidate(ctx, currentID, otherID)
		e.publish(ctx, EventRequestRejected, map[string]any{
			"relationship_id": rel.ID,
			"requester_id":    rel.RequesterID,
			"recipient_id":    rel.RecipientID,
		})
		return models.StatusRejected, nil
	}

	return "", ErrUnavailable
}

// Remove deletes the pair's record whatever its status: it withdraws a pending
// request, unfriends an accepted pair, clears a rejection, or unblocks. Only
// the blocker may remove a blocked record.
func (e *Engine) Remove(ctx context.Context, currentID, otherID int64) error {
	if err := validatePair(currentID, otherID); err != nil {
		return err
	}

	rel, err := e.store.GetByPair(ctx, currentID, otherID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if rel.Status == models.StatusBlocked && rel.RequesterID != currentID {
		return ErrBlocked
	}

	if err := e.store.DeleteByPair(ctx, currentID, otherID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	e.invalidate(ctx, currentID, otherID)
	e.publish(ctx, EventRemoved, map[string]any{
		"relationship_id": rel.ID,
		"user_id":         currentID,
		"other_id":        otherID,
		"prior_status":    rel.Status,
	})
	return nil
}

// Block marks the pair blocked, creating the record if none exists. The
// blocker is stored as requester so Remove can tell who may unblock.
func (e *Engine) Block(ctx context.Context, currentID, otherID int64) (models.Status, error) {
	if err := validatePair(currentID, otherID); err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		rel, err := e.store.GetByPair(ctx, currentID, otherID)
		if errors.Is(err, sql.ErrNoRows) {
			created := &models.Relationship{
				RequesterID: currentID,
				RecipientID: otherID,
				Status:      models.StatusBlocked,
				Since:       e.now(),
			}
			if err := e.store.Create(ctx, created); err != nil {
				if errors.Is(err, repositories.ErrDuplicatePair) {
					continue
				}
				return "", err
			}
			e.invalidate(ctx, currentID, otherID)
			e.publish(ctx, EventBlocked, map[string]any{
				"relationship_id": created.ID,
				"blocker_id":      currentID,
				"blocked_id":      otherID,
			})
			return models.StatusBlocked, nil
		}
		if err != nil {
			return "", err
		}
		if rel.Status == models.StatusBlocked {
			if rel.RequesterID == currentID {
				return models.StatusBlocked, nil
			}
			return "", ErrBlocked
		}

		upd := *rel
		upd.RequesterID = currentID
		upd.RecipientID = otherID
		upd.Status = models.StatusBlocked
		upd.Since = e.now()
		if err := e.store.Update(ctx, &upd, rel.Status); err != nil {
			if errors.Is(err, repositories.ErrStale) {
				continue
			}
			return "", err
		}
		e.invalidate(ctx, currentID, otherID)
		e.publish(ctx, EventBlocked, map[string]any{
			"relationship_id": rel.ID,
			"blocker_id":      currentID,
			"blocked_id":      otherID,
		})
		return models.StatusBlocked, nil
	}

	return "", ErrUnavailable
}

// StatusBetween reports the pair's state from viewerID's perspective. It
// never mutates; absence of a record is ViewNone.
func (e *Engine) StatusBetween(ctx context.Context, viewerID, otherID int64) (models.View, error) {
	if err := validatePair(viewerID, otherID); err != nil {
		return "", err
	}

	if view, ok := e.cache.GetView(ctx, viewerID, otherID); ok {
		return view, nil
	}

	rel, err := e.store.GetByPair(ctx, viewerID, otherID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	view := rel.ViewFor(viewerID)
	e.cache.SetView(ctx, viewerID, otherID, view)
	return view, nil
}

// ListFriends returns the ids of everyone in an accepted relationship with
// userID, most recent first (ties broken by relationship id).
func (e *Engine) ListFriends(ctx context.Context, userID int64) ([]int64, error) {
	if ids, ok := e.cache.GetFriends(ctx, userID); ok {
		return ids, nil
	}

	rels, err := e.store.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rels))
	for i := range rels {
		ids = append(ids, rels[i].OtherID(userID))
	}
	e.cache.SetFriends(ctx, userID, ids)
	return ids, nil
}

// ListIncoming returns the pending requests awaiting userID's decision.
func (e *Engine) ListIncoming(ctx context.Context, userID int64) ([]models.Relationship, error) {
	return e.store.ListPendingIncoming(ctx, userID)
}

// SearchWithRelationship delegates matching to the directory, drops the
// viewer from the hits and annotates each with the viewer-relative status.
func (e *Engine) SearchWithRelationship(ctx context.Context, term string, viewerID int64, limit int) ([]models.SearchHit, error) {
	users, err := e.directory.SearchByText(ctx, term, viewerID, limit)
	if err != nil {
		return nil, err
	}

	hits := make([]models.SearchHit, 0, len(users))
	for _, user := range users {
		if user.ID == viewerID {
			continue
		}
		view, err := e.StatusBetween(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		hits = append(hits, models.SearchHit{User: user, Relationship: view})
	}
	return hits, nil
}

func validatePair(a, b int64) error {
	if a == b || a <= 0 || b <= 0 {
		return ErrInvalidPair
	}
	return nil
}

func (e *Engine) invalidate(ctx context.Context, a, b int64) {
	e.cache.InvalidatePair(ctx, a, b)
}

func (e *Engine) publish(ctx context.Context, routingKey string, payload any) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, routingKey, payload); err != nil {
		log.Printf("warning: failed to publish %s: %v", routingKey, err)
	}
}
