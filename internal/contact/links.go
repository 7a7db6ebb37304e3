// Package contact builds the WhatsApp and phone deep links used by the
// booking buttons.
package contact

import (
	"fmt"
	"net/url"
	"strings"
)

type Links struct {
	// Number is the international number without "+", e.g. 917225994009.
	Number   string
	Business string
}

// CardMessage is the short enquiry sent from a grid card.
func (l Links) CardMessage(itemName string) string {
	return fmt.Sprintf("Hi! I'm interested in renting the \"%s\" from %s.", itemName, l.Business)
}

// DetailMessage is sent from the detail view.
func (l Links) DetailMessage(itemName string) string {
	return l.CardMessage(itemName) + " Can you help me with the booking?"
}

// ShortlistMessage asks about several outfits at once.
func (l Links) ShortlistMessage(itemNames []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I'm interested in renting these outfits from %s:", l.Business)
	for _, n := range itemNames {
		b.WriteString("\n- ")
		b.WriteString(n)
	}
	b.WriteString("\nCan you help me with the booking?")
	return b.String()
}

// WhatsApp returns a wa.me link that opens a chat prefilled with msg.
func (l Links) WhatsApp(msg string) string {
	return "https://wa.me/" + l.Number + "?text=" + encodeComponent(msg)
}

func (l Links) Call() string { return "tel:+" + l.Number }

// encodeComponent escapes like encodeURIComponent: spaces become %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
