package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the local SQLite database that keeps visitor shortlists and
// the enquiry log. The catalog itself is never stored here.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// :memory: databases exist per connection
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Shortlists (one per sid cookie)
CREATE TABLE IF NOT EXISTS shortlists(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS shortlist_items(
  shortlist_id TEXT NOT NULL REFERENCES shortlists(id) ON DELETE CASCADE,
  item_id      TEXT NOT NULL,
  created_at   TEXT,
  PRIMARY KEY (shortlist_id, item_id)
);

-- Enquiries (contact redirects)
CREATE TABLE IF NOT EXISTS enquiries(
  id TEXT PRIMARY KEY,
  item_id TEXT NOT NULL,
  item_name TEXT NOT NULL DEFAULT '',
  channel TEXT NOT NULL CHECK (channel IN ('whatsapp','call','shortlist')),
  session_id TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_enquiries_item       ON enquiries(item_id);
CREATE INDEX IF NOT EXISTS idx_enquiries_created_at ON enquiries(created_at);
`
	_, err := db.Exec(schema)
	return err
}
