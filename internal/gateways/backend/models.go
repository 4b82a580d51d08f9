package backend

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"subtrack/internal/entity"
)

// TokenResponse - bearer token payload returned by login and the bank
// code exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SubscriptionInput - create-subscription request body. Pointer fields
// are required; the rest default server-side.
type SubscriptionInput struct {
	// Title - required display name
	Title *string `json:"title"`
	// Amount - required, must be >= 0
	Amount *float64 `json:"amount"`
	// RenewalDate - required ISO 8601 date
	RenewalDate *string `json:"renewal_date"`

	Category        string `json:"category,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
	Currency        string `json:"currency,omitempty"`
	Frequency       string `json:"frequency,omitempty"`
	Source          string `json:"source,omitempty"`
	TransactionDate string `json:"transaction_date,omitempty"`
	ConfidenceScore *int64 `json:"confidence_score,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// Validate checks the input before it goes over the wire, mirroring the
// backend's own rules so obvious mistakes fail locally.
func (m *SubscriptionInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("title", "body", m.Title); err != nil {
		res = append(res, err)
	} else if err := validate.RequiredString("title", "body", *m.Title); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	} else if err := validate.Minimum("amount", "body", *m.Amount, 0, false); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("renewal_date", "body", m.RenewalDate); err != nil {
		res = append(res, err)
	} else if err := validate.FormatOf("renewal_date", "body", "date", *m.RenewalDate, formats); err != nil {
		res = append(res, err)
	}

	if m.ConfidenceScore != nil {
		if err := validate.MinimumInt("confidence_score", "body", *m.ConfidenceScore, 0, false); err != nil {
			res = append(res, err)
		}
		if err := validate.MaximumInt("confidence_score", "body", *m.ConfidenceScore, 100, false); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// deleteResponse - backend acknowledgement for delete
type deleteResponse struct {
	Message string `json:"message"`
}

// transactionsResponse wraps the aggregator transaction list.
type transactionsResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
}

// detectionsResponse wraps AI analysis results.
type detectionsResponse struct {
	Subscriptions []entity.DetectedSubscription `json:"subscriptions"`
}

// accountsResponse wraps the aggregator account list.
type accountsResponse struct {
	Accounts []entity.Account `json:"accounts"`
}
