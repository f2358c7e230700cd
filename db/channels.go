package db

import "database/sql"

// SetSuggestionChannel upserts the suggestion channel mapping for a guild.
// One active mapping per guild.
func (s *Store) SetSuggestionChannel(guildID, channelID string) error {
	_, err := s.conn.Exec(
		`INSERT OR REPLACE INTO channel_config (guild_id, channel_id) VALUES (?, ?)`,
		guildID, channelID)
	return err
}

// GetSuggestionChannel returns the configured channel for a guild, or "" when
// none has been set.
func (s *Store) GetSuggestionChannel(guildID string) (string, error) {
	var channelID string
	err := s.conn.QueryRow(
		`SELECT channel_id FROM channel_config WHERE guild_id = ?`, guildID).Scan(&channelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return channelID, nil
}
