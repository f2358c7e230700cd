package db

// createTables 如果数据库中不存在必要的表，则创建它们
func (s *Store) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS suggestions (
			message_id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			guild_id TEXT NOT NULL DEFAULT '',
			suggestion TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			category TEXT NOT NULL DEFAULT 'General',
			is_anonymous INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			status_reason TEXT NOT NULL DEFAULT '',
			status_updated_at INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS votes (
			message_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (message_id, user_id)
		);`,
		`CREATE TABLE IF NOT EXISTS channel_config (
			guild_id TEXT PRIMARY KEY,
			channel_id TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			name TEXT PRIMARY KEY
		);`,
	}

	for _, stmt := range stmts {
		if _, err := s.conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
