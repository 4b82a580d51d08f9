package entity

import (
	"strings"
	"time"
)

// DefaultCurrency - the only currency this client sends and displays
const DefaultCurrency = "DKK"

// DefaultFrequency - renewal cadence assumed when the backend omits one
const DefaultFrequency = "måned"

// Subscription - one tracked subscription as served by the backend.
// The client never owns this record: it is fetched, displayed and
// discarded; only create and delete go back over the wire.
type Subscription struct {
	// ID - backend-assigned identifier, unique within one user's collection
	ID int64 `json:"id"`
	// Title - display name, user- or AI-supplied
	Title string `json:"title"`
	// Amount - price per renewal, minor-unit precision
	Amount float64 `json:"amount"`
	// Currency - ISO code, always DKK in this client's usage
	Currency string `json:"currency,omitempty"`
	// RenewalDate - next charge date as the backend sent it (ISO 8601
	// YYYY-MM-DD); kept raw so invalid values still display verbatim
	RenewalDate string `json:"renewal_date"`
	// Category - one of the fixed labels or an imported label
	Category string `json:"category,omitempty"`
	// LogoURL - absolute logo URL when the backend knows one
	LogoURL string `json:"logo_url,omitempty"`
	// Domain - known merchant domain, when any
	Domain string `json:"domain,omitempty"`
	// Frequency - human-readable cadence; empty means monthly
	Frequency string `json:"frequency,omitempty"`
	// Source - where the record came from: manual, tink or pdf
	Source string `json:"source,omitempty"`
	// TransactionDate - most recent matching bank transaction, when imported
	TransactionDate string `json:"transaction_date,omitempty"`
	// Confidence - AI detection confidence 0-100, when imported
	Confidence int `json:"confidence_score,omitempty"`
	// Notes - free text
	Notes string `json:"notes,omitempty"`
}

// DateLayout - the only date format the backend accepts on writes
const DateLayout = "2006-01-02"

var renewalLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// RenewalTime parses RenewalDate. ok is false for empty or malformed
// values; callers fall back to the raw string.
func (s Subscription) RenewalTime() (time.Time, bool) {
	return ParseDate(s.RenewalDate)
}

// ParseDate parses a backend date string, date-only or with a time part.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range renewalLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseWireDate parses a date the strict way the backend validates
// writes: date-only, no time part. Reads stay lenient via ParseDate.
func ParseWireDate(v string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EffectiveFrequency returns Frequency or the monthly default.
func (s Subscription) EffectiveFrequency() string {
	if strings.TrimSpace(s.Frequency) == "" {
		return DefaultFrequency
	}
	return s.Frequency
}
