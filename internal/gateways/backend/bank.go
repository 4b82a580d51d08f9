package backend

import (
	"context"
	"net/http"
	"net/url"

	"subtrack/internal/entity"
)

// ExchangeBankCode trades the authorization code from the bank-link
// redirect for an aggregator access token. The backend holds the
// client secret; this client never sees it.
func (c *Client) ExchangeBankCode(ctx context.Context, code string) (string, error) {
	body := map[string]string{"code": code}
	var tok TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/tink/token", false, body, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// BankTransactions fetches transactions across all linked accounts
// using a previously exchanged aggregator token.
func (c *Client) BankTransactions(ctx context.Context, bankToken string) ([]entity.Transaction, error) {
	var resp transactionsResponse
	path := "/api/tink/transactions?token=" + url.QueryEscape(bankToken)
	if err := c.do(ctx, http.MethodGet, path, false, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// BankAccounts lists the linked accounts for an aggregator token.
func (c *Client) BankAccounts(ctx context.Context, bankToken string) ([]entity.Account, error) {
	var resp accountsResponse
	path := "/api/tink/accounts?token=" + url.QueryEscape(bankToken)
	if err := c.do(ctx, http.MethodGet, path, false, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
