package source

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// OpenSQLite loads a configuration tree from a SQLite database holding a
// `config(key, value)` table. Keys are dotted paths ("server.port"); each
// path segment becomes a nested node. The database is read once and closed;
// the returned Source is an immutable in-memory snapshot.
func OpenSQLite(path string) (Source, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening configuration database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT key, value FROM config")
	if err != nil {
		return nil, fmt.Errorf("reading config table: %w", err)
	}
	defer rows.Close()

	tree := make(map[string]any)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning config row: %w", err)
		}
		insertPath(tree, key, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating config rows: %w", err)
	}

	return Map(tree), nil
}

// insertPath places value into the tree at a dotted path, creating
// intermediate nodes as needed. A scalar already stored at an intermediate
// segment is replaced by a node.
func insertPath(tree map[string]any, path, value string) {
	segments := strings.Split(path, ".")
	node := tree
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}
