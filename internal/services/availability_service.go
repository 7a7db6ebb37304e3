package services

import (
	"missingfit/internal/catalog"
	"missingfit/internal/domain"
)

type AvailabilityService struct {
	Store *catalog.Store
}

func NewAvailabilityService(store *catalog.Store) *AvailabilityService {
	return &AvailabilityService{Store: store}
}

// CheckAvailability reports an item's rental status and, for rented items,
// when it comes back.
func (s *AvailabilityService) CheckAvailability(itemID string) (domain.Availability, error) {
	it, ok := catalog.Find(s.Store.Items(), itemID)
	if !ok {
		return domain.Availability{}, ErrItemNotFound
	}
	a := domain.Availability{ItemID: it.ID, Status: string(it.Status), Label: it.Status.Label()}
	if !it.IsAvailable() && it.AvailableAfter != nil {
		a.AvailableAfter = it.AvailableAfter.Format("2006-01-02")
	}
	return a, nil
}
