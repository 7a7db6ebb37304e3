package handlers

import (
	"github.com/jmoiron/sqlx"

	"missingfit/internal/catalog"
	"missingfit/internal/config"
	"missingfit/internal/contact"
	"missingfit/internal/repos"
	"missingfit/internal/services"
)

type Deps struct {
	BrowseHandler       *BrowseHandler
	DressHandler        *DressHandler
	SearchHandler       *SearchHandler
	AvailabilityHandler *AvailabilityHandler
	ContactHandler      *ContactHandler
	ShortlistHandler    *ShortlistHandler
	AdminHandler        *AdminHandler
	APIHandler          *APIHandler
	HealthHandler       *HealthHandler
}

// NewDeps wires repos and services into handlers. counter receives one
// call per recorded enquiry.
func NewDeps(db *sqlx.DB, cfg config.Config, store *catalog.Store, counter services.Counter) *Deps {
	shortRepo := repos.NewShortlistRepo(db)
	enqRepo := repos.NewEnquiryRepo(db)

	links := contact.Links{Number: cfg.WhatsAppNumber, Business: cfg.BusinessName}

	catalogSvc := services.NewCatalogService(store)
	availSvc := services.NewAvailabilityService(store)
	shortSvc := services.NewShortlistService(shortRepo, store)
	enqSvc := services.NewEnquiryService(enqRepo, links, counter)

	return &Deps{
		BrowseHandler:       &BrowseHandler{Catalog: catalogSvc},
		DressHandler:        &DressHandler{Catalog: catalogSvc},
		SearchHandler:       &SearchHandler{Catalog: catalogSvc},
		AvailabilityHandler: &AvailabilityHandler{Avail: availSvc},
		ContactHandler:      &ContactHandler{Catalog: catalogSvc, Enquiry: enqSvc, Shortlist: shortSvc},
		ShortlistHandler:    &ShortlistHandler{Shortlist: shortSvc},
		AdminHandler:        &AdminHandler{Catalog: catalogSvc, Enquiry: enqSvc},
		APIHandler:          &APIHandler{Catalog: catalogSvc},
		HealthHandler:       &HealthHandler{Catalog: catalogSvc},
	}
}
