package models

// UserSummary is the directory's view of a user. This service never creates
// or deletes users; ids are opaque references into the account directory.
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Handle    string `json:"handle"`
	Email     string `json:"email"`
}

// SearchHit is a directory search result annotated with the viewer's
// relationship to the user.
type SearchHit struct {
	User         UserSummary `json:"user"`
	Relationship View        `json:"relationship"`
}
