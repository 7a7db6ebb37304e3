package services

import (
	"missingfit/internal/catalog"
	"missingfit/internal/domain"
	"missingfit/internal/repos"
)

// ShortlistService keeps the dresses a visitor saved for later. Only ids
// are stored; names, prices and images come from the current snapshot.
type ShortlistService struct {
	Repo  *repos.ShortlistRepo
	Store *catalog.Store
}

func NewShortlistService(r *repos.ShortlistRepo, store *catalog.Store) *ShortlistService {
	return &ShortlistService{Repo: r, Store: store}
}

// Save adds itemID for the session. Items missing from the snapshot are
// refused.
func (s *ShortlistService) Save(sessionID, itemID string) error {
	if _, ok := catalog.Find(s.Store.Items(), itemID); !ok {
		return ErrItemNotFound
	}
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.Add(id, itemID)
}

func (s *ShortlistService) Unsave(sessionID, itemID string) error {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.Remove(id, itemID)
}

// List resolves the saved ids against the snapshot, oldest first. Ids no
// longer in the catalog are left out.
func (s *ShortlistService) List(sessionID string) ([]domain.Item, error) {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return nil, err
	}
	ids, err := s.Repo.ItemIDs(id)
	if err != nil {
		return nil, err
	}
	items := s.Store.Items()
	out := make([]domain.Item, 0, len(ids))
	for _, itemID := range ids {
		if it, ok := catalog.Find(items, itemID); ok {
			out = append(out, it)
		}
	}
	return out, nil
}
