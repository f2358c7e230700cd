package model

// Suggestion represents a row from the suggestions table. The ID is the
// Discord message ID assigned when the suggestion embed is posted.
type Suggestion struct {
	ID              string
	UserID          string
	GuildID         string
	Text            string
	Status          Status
	Category        string
	IsAnonymous     bool
	CreatedAt       int64
	StatusReason    string
	StatusUpdatedAt int64
}

// Stats holds per-status suggestion counts.
type Stats struct {
	Total       int
	Pending     int
	Accepted    int
	Rejected    int
	UnderReview int
}

// ExportRecord is one row of the admin export projection, with vote counts
// computed at read time.
type ExportRecord struct {
	ID        string
	UserID    string
	Text      string
	Status    Status
	Category  string
	CreatedAt int64
	Upvotes   int
	Downvotes int
}
