package domain

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a rupee amount held in paise.
type Amount int64

var indianEnglish = language.MustParse("en-IN")

// Rupees builds an Amount from whole rupees.
func Rupees(r int64) Amount { return Amount(r * 100) }

// ParseAmount accepts "2500", "2500.00", "2,500" or "₹2,500". Anything it
// cannot read is zero.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Amount(math.Round(f * 100))
}

// String renders the amount with Indian digit grouping, dropping paise when
// there are none.
func (a Amount) String() string {
	p := message.NewPrinter(indianEnglish)
	if a%100 == 0 {
		return p.Sprintf("₹%d", int64(a)/100)
	}
	return p.Sprintf("₹%.2f", float64(a)/100)
}

// InRupees is the amount as a rupee value for numeric exports.
func (a Amount) InRupees() float64 { return float64(a) / 100 }
