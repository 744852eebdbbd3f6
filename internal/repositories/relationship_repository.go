package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"friendship-service/internal/models"
)

// ErrDuplicatePair is returned by Create when a record for the unordered pair
// already exists (unique index on LEAST/GREATEST of the participant ids).
var ErrDuplicatePair = errors.New("relationship already exists for pair")

// ErrStale is returned by Update when the record's status no longer matches
// the expected one, i.e. a concurrent writer got there first.
var ErrStale = errors.New("relationship changed concurrently")

const pqUniqueViolation = "23505"

// RelationshipStore is the persistence contract the engine runs on. Every
// method is a single atomic round-trip; not-found is sql.ErrNoRows.
type RelationshipStore interface {
	Create(ctx context.Context, rel *models.Relationship) error
	GetByPair(ctx context.Context, a, b int64) (*models.Relationship, error)
	Update(ctx context.Context, rel *models.Relationship, expected models.Status) error
	DeleteByPair(ctx context.Context, a, b int64) error
	ListAccepted(ctx context.Context, userID int64) ([]models.Relationship, error)
	ListPendingIncoming(ctx context.Context, userID int64) ([]models.Relationship, error)
}

type relationshipStore struct {
	db *sqlx.DB
}

func NewRelationshipStore(db *sqlx.DB) RelationshipStore {
	return &relationshipStore{db: db}
}

func (s *relationshipStore) Create(ctx context.Context, rel *models.Relationship) error {
	err := s.db.QueryRowxContext(ctx, `
INSERT INTO relationships (requester_id, recipient_id, status, since)
VALUES ($1, $2, $3, $4)
RETURNING id, requester_id, recipient_id, status, since
`, rel.RequesterID, rel.RecipientID, rel.Status, rel.Since).StructScan(rel)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicatePair
		}
		return fmt.Errorf("failed to create relationship: %w", err)
	}
	return nil
}

func (s *relationshipStore) GetByPair(ctx context.Context, a, b int64) (*models.Relationship, error) {
	var rel models.Relationship
	err := s.db.GetContext(ctx, &rel, `
SELECT id, requester_id, recipient_id, status, since
FROM relationships
WHERE (requester_id=$1 AND recipient_id=$2) OR (requester_id=$2 AND recipient_id=$1)
`, a, b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to load relationship: %w", err)
	}
	return &rel, nil
}

// Update rewrites the record's direction, status and since, guarded by a
// compare-and-swap on the previously observed status.
func (s *relationshipStore) Update(ctx context.Context, rel *models.Relationship, expected models.Status) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE relationships
SET requester_id=$2, recipient_id=$3, status=$4, since=$5
WHERE id=$1 AND status=$6
`, rel.ID, rel.RequesterID, rel.RecipientID, rel.Status, rel.Since, expected)
	if err != nil {
		return fmt.Errorf("failed to update relationship: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrStale
	}
	return nil
}

func (s *relationshipStore) DeleteByPair(ctx context.Context, a, b int64) error {
	res, err := s.db.ExecContext(ctx, `
DELETE FROM relationships
WHERE (requester_id=$1 AND recipient_id=$2) OR (requester_id=$2 AND recipient_id=$1)
`, a, b)
	if err != nil {
		return fmt.Errorf("failed to delete relationship: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *relationshipStore) ListAccepted(ctx context.Context, userID int64) ([]models.Relationship, error) {
	var rels []models.Relationship
	err := s.db.SelectContext(ctx, &rels, `
SELECT id, requester_id, recipient_id, status, since
FROM relationships
WHERE (requester_id=$1 OR recipient_id=$1) AND status='accepted'
ORDER BY since DESC, id ASC
`, userID)
	return rels, err
}

func (s *relationshipStore) ListPendingIncoming(ctx context.Context, userID int64) ([]models.Relationship, error) {
	var rels []models.Relationship
	err := s.db.SelectContext(ctx, &rels, `
SELECT id, requester_id, recipient_id, status, since
FROM relationships
WHERE recipient_id=$1 AND status='pending'
ORDER BY since DESC, id ASC
`, userID)
	return rels, err
}
