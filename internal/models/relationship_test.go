package models

import "testing"

func TestViewFor(t *testing.T) {
	cases := []struct {
		name   string
		rel    *Relationship
		viewer int64
		want   View
	}{
		{"nil record", nil, 1, ViewNone},
		{"pending seen by requester", &Relationship{RequesterID: 1, RecipientID: 2, Status: StatusPending}, 1, ViewPendingOutgoing},
		{"pending seen by recipient", &Relationship{RequesterID: 1, RecipientID: 2, Status: StatusPending}, 2, ViewPendingIncoming},
		{"accepted", &Relationship{RequesterID: 1, RecipientID: 2, Status: StatusAccepted}, 2, ViewFriends},
		{"rejected", &Relationship{RequesterID: 1, RecipientID: 2, Status: StatusRejected}, 1, ViewRejected},
		{"blocked", &Relationship{RequesterID: 1, RecipientID: 2, Status: StatusBlocked}, 2, ViewBlocked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rel.ViewFor(tc.viewer); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOtherID(t *testing.T) {
	rel := &Relationship{RequesterID: 7, RecipientID: 9}
	if got := rel.OtherID(7); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := rel.OtherID(9); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}
