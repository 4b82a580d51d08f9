package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"

	"subtrack/internal/entity"
)

// ListSubscriptions fetches the user's full collection. The client
// calls this on every list refresh; there is no pagination.
func (c *Client) ListSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	var subs []entity.Subscription
	if err := c.do(ctx, http.MethodGet, "/api/subscriptions", true, "", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CreateSubscription validates the draft locally, then creates it and
// returns the backend's authoritative record.
func (c *Client) CreateSubscription(ctx context.Context, draft entity.Subscription) (*entity.Subscription, error) {
	input := &SubscriptionInput{
		Title:           swag.String(draft.Title),
		Amount:          swag.Float64(draft.Amount),
		RenewalDate:     swag.String(draft.RenewalDate),
		Category:        draft.Category,
		LogoURL:         draft.LogoURL,
		Currency:        draft.Currency,
		Frequency:       draft.Frequency,
		Source:          draft.Source,
		TransactionDate: draft.TransactionDate,
		Notes:           draft.Notes,
	}
	if draft.Confidence > 0 {
		input.ConfidenceScore = swag.Int64(int64(draft.Confidence))
	}
	if err := input.Validate(strfmt.Default); err != nil {
		return nil, &ValidationError{Status: http.StatusUnprocessableEntity, Detail: err.Error()}
	}

	var created entity.Subscription
	if err := c.doJSON(ctx, http.MethodPost, "/api/subscriptions", true, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteSubscription removes one subscription by id.
func (c *Client) DeleteSubscription(ctx context.Context, id int64) error {
	var ack deleteResponse
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/subscriptions/%d", id), true, "", nil, &ack)
}

// Summary fetches the aggregated spending dashboard.
func (c *Client) Summary(ctx context.Context) (*entity.SpendingSummary, error) {
	var sum entity.SpendingSummary
	if err := c.do(ctx, http.MethodGet, "/api/user/summary", true, "", nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// MerchantCancelLink looks up the curated cancellation link for a
// merchant. A 404 means the backend does not know the merchant.
func (c *Client) MerchantCancelLink(ctx context.Context, merchant string) (*entity.MerchantLink, error) {
	var link entity.MerchantLink
	path := "/api/merchant-links/" + url.PathEscape(merchant)
	if err := c.do(ctx, http.MethodGet, path, true, "", nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}
