package db

// AddCategory creates a category. Returns false, without an error, when the
// name already exists.
func (s *Store) AddCategory(name string) (bool, error) {
	res, err := s.conn.Exec(`INSERT OR IGNORE INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// RemoveCategory deletes a category. Returns false when the name was absent.
func (s *Store) RemoveCategory(name string) (bool, error) {
	res, err := s.conn.Exec(`DELETE FROM categories WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ListCategories returns all category names in alphabetical order.
func (s *Store) ListCategories() ([]string, error) {
	rows, err := s.conn.Query(`SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
