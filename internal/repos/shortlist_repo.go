package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type ShortlistRepo struct{ db *sqlx.DB }

func NewShortlistRepo(db *sqlx.DB) *ShortlistRepo { return &ShortlistRepo{db: db} }

// Ensure returns the shortlist id for a session, creating it on first use.
func (r *ShortlistRepo) Ensure(sessionID string) (string, error) {
	var id string
	if err := r.db.Get(&id, `SELECT id FROM shortlists WHERE session_id=?`, sessionID); err == nil {
		return id, nil
	}
	_, err := r.db.Exec(`INSERT INTO shortlists(id,session_id,updated_at) VALUES(?,?,?)
	  ON CONFLICT(session_id) DO NOTHING`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *ShortlistRepo) Add(shortlistID, itemID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO shortlist_items(shortlist_id, item_id, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(shortlist_id, item_id) DO NOTHING
	`, shortlistID, itemID)
	return err
}

func (r *ShortlistRepo) Remove(shortlistID, itemID string) error {
	_, err := r.db.Exec(`DELETE FROM shortlist_items WHERE shortlist_id=? AND item_id=?`, shortlistID, itemID)
	return err
}

// ItemIDs lists saved item ids, oldest first.
func (r *ShortlistRepo) ItemIDs(shortlistID string) ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `
	  SELECT item_id FROM shortlist_items
	  WHERE shortlist_id = ?
	  ORDER BY created_at, rowid
	`, shortlistID)
	return out, err
}
