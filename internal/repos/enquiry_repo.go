package repos

import "github.com/jmoiron/sqlx"

type EnquiryRepo struct{ db *sqlx.DB }

func NewEnquiryRepo(db *sqlx.DB) *EnquiryRepo { return &EnquiryRepo{db: db} }

type EnquiryRow struct {
	ID        string `db:"id"`
	ItemID    string `db:"item_id"`
	ItemName  string `db:"item_name"`
	Channel   string `db:"channel"`
	SessionID string `db:"session_id"`
	CreatedAt string `db:"created_at"`
}

// EnquiryCount aggregates enquiries per item and channel for the admin page.
type EnquiryCount struct {
	ItemID   string `db:"item_id"`
	ItemName string `db:"item_name"`
	Channel  string `db:"channel"`
	Count    int    `db:"n"`
}

func (r *EnquiryRepo) Create(id, itemID, itemName, channel, sessionID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO enquiries(id, item_id, item_name, channel, session_id, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, id, itemID, itemName, channel, sessionID)
	return err
}

func (r *EnquiryRepo) ListLatest(limit int) ([]EnquiryRow, error) {
	out := []EnquiryRow{}
	err := r.db.Select(&out, `
	  SELECT id, item_id, item_name, channel, COALESCE(session_id,'') AS session_id, created_at
	  FROM enquiries
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *EnquiryRepo) Counts() ([]EnquiryCount, error) {
	out := []EnquiryCount{}
	err := r.db.Select(&out, `
	  SELECT item_id, MAX(item_name) AS item_name, channel, COUNT(*) AS n
	  FROM enquiries
	  GROUP BY item_id, channel
	  ORDER BY n DESC, item_id, channel
	`)
	return out, err
}
