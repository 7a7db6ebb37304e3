package domain

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusRented      Status = "rented"
	StatusMaintenance Status = "maintenance"
)

// Label is the badge text shown on cards and the detail view.
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusRented:
		return "Currently Rented"
	case StatusMaintenance:
		return "Under Maintenance"
	default:
		return "Currently Unavailable"
	}
}

// ParseStatus maps the wire value onto a Status. Unknown values are kept
// verbatim so they still render as unavailable.
func ParseStatus(s string) Status {
	switch s {
	case "available":
		return StatusAvailable
	case "rented":
		return StatusRented
	case "maintenance", "under-maintenance", "under_maintenance":
		return StatusMaintenance
	default:
		return Status(s)
	}
}

// Item is one rentable outfit as served by the items API.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`

	PriceWithoutAccessories Amount `json:"price_without_jewelry"`
	PriceWithAccessories    Amount `json:"price_with_jewelry"`
	SecurityDeposit         Amount `json:"security_deposit"`

	Status         Status     `json:"status"`
	AvailableAfter *time.Time `json:"available_after,omitempty"`

	Sizes  []string `json:"sizes"`
	Images []string `json:"images"`
}

func (it Item) IsAvailable() bool { return it.Status == StatusAvailable }

// PrimaryImage returns the first image, or "" when the item has none.
func (it Item) PrimaryImage() string {
	if len(it.Images) == 0 {
		return ""
	}
	return it.Images[0]
}

// CategoryLabel renders the category tag for badges ("indo-western" -> "Indo-Western").
func (it Item) CategoryLabel() string {
	return cases.Title(language.English).String(it.Category)
}

// AvailableAfterNotice is empty unless the item is out and carries a return date.
func (it Item) AvailableAfterNotice() string {
	if it.IsAvailable() || it.AvailableAfter == nil {
		return ""
	}
	return it.AvailableAfter.Format("2 January 2006")
}

type Category struct {
	ID   string
	Name string
}

// CategoryAll disables filtering.
const CategoryAll = "all"

// Categories is the fixed filter bar, in display order.
var Categories = []Category{
	{ID: CategoryAll, Name: "All Collections"},
	{ID: "lehenga", Name: "Lehengas"},
	{ID: "saree", Name: "Sarees"},
	{ID: "indo-western", Name: "Indo-Western"},
	{ID: "anarkali", Name: "Anarkalis"},
	{ID: "gown", Name: "Gowns"},
	{ID: "sharara", Name: "Shararas"},
}

func KnownCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Availability is the JSON shape of the availability endpoint.
type Availability struct {
	ItemID         string `json:"itemId"`
	Status         string `json:"status"`
	Label          string `json:"label"`
	AvailableAfter string `json:"availableAfter,omitempty"`
}
