package db

import (
	"database/sql"
	"fmt"

	"suggestbot/model"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const suggestionColumns = `message_id, user_id, guild_id, suggestion, status, category,
	is_anonymous, created_at, COALESCE(status_reason, '') as status_reason, status_updated_at`

// scanSuggestion scans a row into a Suggestion struct.
func scanSuggestion(scanner rowScanner) (*model.Suggestion, error) {
	var sug model.Suggestion
	err := scanner.Scan(
		&sug.ID, &sug.UserID, &sug.GuildID, &sug.Text, &sug.Status, &sug.Category,
		&sug.IsAnonymous, &sug.CreatedAt, &sug.StatusReason, &sug.StatusUpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // no suggestion found is not an error
		}
		return nil, err
	}
	return &sug, nil
}

func (s *Store) querySuggestions(query string, args ...interface{}) ([]*model.Suggestion, error) {
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []*model.Suggestion
	for rows.Next() {
		sug, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		if sug != nil {
			suggestions = append(suggestions, sug)
		}
	}
	return suggestions, rows.Err()
}

// AddSuggestion inserts a new suggestion keyed by its posted message ID.
func (s *Store) AddSuggestion(sug *model.Suggestion) error {
	_, err := s.conn.Exec(`INSERT INTO suggestions
		(message_id, user_id, guild_id, suggestion, status, category, is_anonymous, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sug.ID, sug.UserID, sug.GuildID, sug.Text, sug.Status, sug.Category, sug.IsAnonymous, sug.CreatedAt)
	return err
}

// GetSuggestion retrieves a suggestion by its message ID. Returns nil, nil
// when no row matches.
func (s *Store) GetSuggestion(id string) (*model.Suggestion, error) {
	row := s.conn.QueryRow(
		`SELECT `+suggestionColumns+` FROM suggestions WHERE message_id = ?`, id)
	return scanSuggestion(row)
}

// UpdateSuggestionStatus sets status, reason and the change timestamp.
func (s *Store) UpdateSuggestionStatus(id string, status model.Status, reason string, updatedAt int64) error {
	_, err := s.conn.Exec(
		`UPDATE suggestions SET status = ?, status_reason = ?, status_updated_at = ? WHERE message_id = ?`,
		status, reason, updatedAt, id)
	return err
}

// UpdateSuggestionText replaces the suggestion text, leaving everything else
// untouched.
func (s *Store) UpdateSuggestionText(id, text string) error {
	_, err := s.conn.Exec(`UPDATE suggestions SET suggestion = ? WHERE message_id = ?`, text, id)
	return err
}

// CountForMassUpdate returns how many suggestions a mass status update would
// touch. category == "" disables the category filter, since == 0 disables the
// age filter; otherwise only rows with created_at >= since match.
func (s *Store) CountForMassUpdate(category string, since int64) (int, error) {
	query := `SELECT COUNT(*) FROM suggestions WHERE 1=1`
	var args []interface{}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if since > 0 {
		query += ` AND created_at >= ?`
		args = append(args, since)
	}

	var count int
	err := s.conn.QueryRow(query, args...).Scan(&count)
	return count, err
}

// MassUpdateStatus applies a status to every suggestion matching the optional
// category and age filters and returns the affected row count.
func (s *Store) MassUpdateStatus(status model.Status, category string, since, updatedAt int64) (int, error) {
	query := `UPDATE suggestions SET status = ?, status_updated_at = ? WHERE 1=1`
	args := []interface{}{status, updatedAt}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if since > 0 {
		query += ` AND created_at >= ?`
		args = append(args, since)
	}

	res, err := s.conn.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// CountForPurge returns how many suggestions a purge would delete: rows older
// than before, optionally restricted to one status.
func (s *Store) CountForPurge(before int64, status model.Status) (int, error) {
	query := `SELECT COUNT(*) FROM suggestions WHERE created_at < ?`
	args := []interface{}{before}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}

	var count int
	err := s.conn.QueryRow(query, args...).Scan(&count)
	return count, err
}

// PurgeSuggestions deletes every suggestion older than before (and matching
// status if given), cascading deletion of their votes. Both deletes run in one
// transaction so counts never observe orphaned votes.
func (s *Store) PurgeSuggestions(before int64, status model.Status) (int, error) {
	tx, err := s.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	where := ` WHERE created_at < ?`
	args := []interface{}{before}
	if status != "" {
		where += ` AND status = ?`
		args = append(args, status)
	}

	if _, err := tx.Exec(
		`DELETE FROM votes WHERE message_id IN (SELECT message_id FROM suggestions`+where+`)`,
		args...); err != nil {
		return 0, err
	}

	res, err := tx.Exec(`DELETE FROM suggestions`+where, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(n), tx.Commit()
}

// ExportSuggestions returns the export projection with vote counts computed
// from the votes table. since == 0 exports everything; rows come back oldest
// first.
func (s *Store) ExportSuggestions(since int64) ([]*model.ExportRecord, error) {
	query := `SELECT message_id, user_id, suggestion, status, category, created_at,
		(SELECT COUNT(*) FROM votes WHERE message_id = s.message_id AND kind = 'up') as upvotes,
		(SELECT COUNT(*) FROM votes WHERE message_id = s.message_id AND kind = 'down') as downvotes
	FROM suggestions s WHERE 1=1`
	var args []interface{}
	if since > 0 {
		query += ` AND created_at >= ?`
		args = append(args, since)
	}
	query += ` ORDER BY created_at`

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*model.ExportRecord
	for rows.Next() {
		var rec model.ExportRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Text, &rec.Status, &rec.Category,
			&rec.CreatedAt, &rec.Upvotes, &rec.Downvotes); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// GetStats computes per-status counts plus the total.
func (s *Store) GetStats() (*model.Stats, error) {
	var stats model.Stats
	targets := map[model.Status]*int{
		model.StatusPending:     &stats.Pending,
		model.StatusAccepted:    &stats.Accepted,
		model.StatusRejected:    &stats.Rejected,
		model.StatusUnderReview: &stats.UnderReview,
	}
	for status, target := range targets {
		if err := s.conn.QueryRow(
			`SELECT COUNT(*) FROM suggestions WHERE status = ?`, status).Scan(target); err != nil {
			return nil, err
		}
	}
	stats.Total = stats.Pending + stats.Accepted + stats.Rejected + stats.UnderReview
	return &stats, nil
}

// SearchSuggestions returns suggestions whose text contains query as a
// case-sensitive substring. instr() is used instead of LIKE because LIKE is
// ASCII case-insensitive in SQLite and the match here is exact containment.
func (s *Store) SearchSuggestions(query string) ([]*model.Suggestion, error) {
	return s.querySuggestions(
		`SELECT `+suggestionColumns+` FROM suggestions WHERE instr(suggestion, ?) > 0`,
		query)
}

// GetUserSuggestions returns a user's suggestions, newest first.
func (s *Store) GetUserSuggestions(userID string) ([]*model.Suggestion, error) {
	return s.querySuggestions(
		`SELECT `+suggestionColumns+` FROM suggestions WHERE user_id = ? ORDER BY created_at DESC`,
		userID)
}

// GetTopSuggestions returns up to limit suggestions created at or after since
// (0 = all time), ranked by upvote count.
func (s *Store) GetTopSuggestions(since int64, limit int) ([]*model.ExportRecord, error) {
	query := `SELECT message_id, user_id, suggestion, status, category, created_at,
		(SELECT COUNT(*) FROM votes WHERE message_id = s.message_id AND kind = 'up') as upvotes,
		(SELECT COUNT(*) FROM votes WHERE message_id = s.message_id AND kind = 'down') as downvotes
	FROM suggestions s WHERE 1=1`
	var args []interface{}
	if since > 0 {
		query += ` AND created_at >= ?`
		args = append(args, since)
	}
	query += fmt.Sprintf(` ORDER BY upvotes DESC LIMIT %d`, limit)

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*model.ExportRecord
	for rows.Next() {
		var rec model.ExportRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Text, &rec.Status, &rec.Category,
			&rec.CreatedAt, &rec.Upvotes, &rec.Downvotes); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
