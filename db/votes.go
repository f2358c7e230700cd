package db

import (
	"database/sql"

	"suggestbot/model"
)

// GetVote retrieves a user's vote on a suggestion. Returns nil, nil when the
// user has not voted.
func (s *Store) GetVote(suggestionID, userID string) (*model.Vote, error) {
	row := s.conn.QueryRow(`
		SELECT message_id, user_id, kind, created_at
		FROM votes
		WHERE message_id = ? AND user_id = ?
	`, suggestionID, userID)

	var vote model.Vote
	err := row.Scan(&vote.SuggestionID, &vote.UserID, &vote.Kind, &vote.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // no vote found is not an error
		}
		return nil, err
	}
	return &vote, nil
}

// CastVote records a vote, replacing any prior vote by the same user on the
// same suggestion. Delete and insert run in one transaction so a concurrent
// VoteCounts read never sees the voter's row missing.
func (s *Store) CastVote(vote *model.Vote) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		DELETE FROM votes WHERE message_id = ? AND user_id = ?
	`, vote.SuggestionID, vote.UserID); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO votes (message_id, user_id, kind, created_at)
		VALUES (?, ?, ?, ?)
	`, vote.SuggestionID, vote.UserID, vote.Kind, vote.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// RetractVote removes a user's vote from a suggestion. Retracting an absent
// vote is a no-op, not an error.
func (s *Store) RetractVote(suggestionID, userID string) error {
	_, err := s.conn.Exec(`
		DELETE FROM votes WHERE message_id = ? AND user_id = ?
	`, suggestionID, userID)
	return err
}

// VoteCounts recomputes the up/down tally for a suggestion from the vote rows.
func (s *Store) VoteCounts(suggestionID string) (*model.VoteCounts, error) {
	row := s.conn.QueryRow(`
		SELECT
			COUNT(CASE WHEN kind = 'up' THEN 1 END),
			COUNT(CASE WHEN kind = 'down' THEN 1 END)
		FROM votes WHERE message_id = ?
	`, suggestionID)

	var counts model.VoteCounts
	if err := row.Scan(&counts.Up, &counts.Down); err != nil {
		return nil, err
	}
	return &counts, nil
}
