package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"missingfit/internal/contact"
	"missingfit/internal/domain"
	"missingfit/internal/repos"
)

const (
	ChannelWhatsApp  = "whatsapp"
	ChannelCall      = "call"
	ChannelShortlist = "shortlist"
)

var ErrEmptyShortlist = errors.New("shortlist empty")

// Counter is told about every recorded enquiry.
type Counter interface {
	Enquiry(channel string)
}

// EnquiryService turns a contact click into a deep link and logs it.
type EnquiryService struct {
	Repo    *repos.EnquiryRepo
	Links   contact.Links
	Counter Counter
}

func NewEnquiryService(r *repos.EnquiryRepo, links contact.Links, counter Counter) *EnquiryService {
	return &EnquiryService{Repo: r, Links: links, Counter: counter}
}

// Enquiry is a deep link plus the outcome of recording it. A failed write
// never blocks the redirect; callers log Err.
type Enquiry struct {
	ID  string
	URL string
	Err error
}

// WhatsApp builds the chat link for one item. fromCard selects the short
// message used on grid cards.
func (s *EnquiryService) WhatsApp(sessionID string, it domain.Item, fromCard bool) Enquiry {
	msg := s.Links.DetailMessage(it.Name)
	if fromCard {
		msg = s.Links.CardMessage(it.Name)
	}
	return s.record(sessionID, it.ID, it.Name, ChannelWhatsApp, s.Links.WhatsApp(msg))
}

func (s *EnquiryService) Call(sessionID string, it domain.Item) Enquiry {
	return s.record(sessionID, it.ID, it.Name, ChannelCall, s.Links.Call())
}

// Shortlist builds one WhatsApp message naming every saved item. Each item
// gets its own enquiry row.
func (s *EnquiryService) Shortlist(sessionID string, items []domain.Item) (Enquiry, error) {
	if len(items) == 0 {
		return Enquiry{}, ErrEmptyShortlist
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	link := s.Links.WhatsApp(s.Links.ShortlistMessage(names))

	var first Enquiry
	for i, it := range items {
		e := s.record(sessionID, it.ID, it.Name, ChannelShortlist, link)
		if i == 0 {
			first = e
		} else if first.Err == nil && e.Err != nil {
			first.Err = e.Err
		}
	}
	return first, nil
}

func (s *EnquiryService) record(sessionID, itemID, itemName, channel, link string) Enquiry {
	e := Enquiry{ID: uuid.NewString(), URL: link}
	if s.Counter != nil {
		s.Counter.Enquiry(channel)
	}
	if err := s.Repo.Create(e.ID, itemID, itemName, channel, sessionID); err != nil {
		e.Err = fmt.Errorf("record %s enquiry for %s: %w", channel, itemID, err)
	}
	return e
}

func (s *EnquiryService) Counts() ([]repos.EnquiryCount, error) { return s.Repo.Counts() }

func (s *EnquiryService) Latest(limit int) ([]repos.EnquiryRow, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Repo.ListLatest(limit)
}
