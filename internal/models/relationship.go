package models

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusBlocked  Status = "blocked"
)

// Relationship is the single record kept per unordered user pair. The
// requester/recipient direction only decides who may accept a pending request;
// an accepted record means both sides are friends.
type Relationship struct {
	ID          int64     `db:"id" json:"id"`
	RequesterID int64     `db:"requester_id" json:"requester_id"`
	RecipientID int64     `db:"recipient_id" json:"recipient_id"`
	Status      Status    `db:"status" json:"status"`
	Since       time.Time `db:"since" json:"since"`
}

// OtherID returns the participant that is not userID.
func (r *Relationship) OtherID(userID int64) int64 {
	if r.RequesterID == userID {
		return r.RecipientID
	}
	return r.RequesterID
}

// Involves reports whether userID is one of the two participants.
func (r *Relationship) Involves(userID int64) bool {
	return r.RequesterID == userID || r.RecipientID == userID
}

// View is a relationship status seen from one user's perspective.
type View string

const (
	ViewNone            View = "none"
	ViewPendingOutgoing View = "pending_outgoing"
	ViewPendingIncoming View = "pending_incoming"
	ViewFriends         View = "friends"
	ViewRejected        View = "rejected"
	ViewBlocked         View = "blocked"
)

// ViewFor maps the stored direction and status to the viewer-relative view.
// A nil relationship is ViewNone.
func (r *Relationship) ViewFor(viewerID int64) View {
	if r == nil {
		return ViewNone
	}
	switch r.Status {
	case StatusPending:
		if r.RequesterID == viewerID {
			return ViewPendingOutgoing
		}
		return ViewPendingIncoming
	case StatusAccepted:
		return ViewFriends
	case StatusRejected:
		return ViewRejected
	case StatusBlocked:
		return ViewBlocked
	}
	return ViewNone
}
