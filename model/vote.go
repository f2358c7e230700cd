package model

// VoteKind is the direction of a vote.
type VoteKind string

const (
	VoteUp   VoteKind = "up"
	VoteDown VoteKind = "down"
)

// Vote represents a single user's vote on a suggestion. A voter has at most
// one vote per suggestion; casting again replaces the previous kind.
type Vote struct {
	SuggestionID string
	UserID       string
	Kind         VoteKind
	CreatedAt    int64
}

// VoteCounts holds the recomputed tally for one suggestion.
type VoteCounts struct {
	Up   int
	Down int
}
