package usecase

import (
	"context"
	"errors"
	"io"

	"subtrack/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase subtrack/internal/usecase API,ListCache,TokenStore

var (
	ErrRefreshInFlight     = errors.New("refresh already in flight")
	ErrInvalidSubscription = errors.New("invalid subscription")
	ErrInvalidID           = errors.New("invalid id")
	ErrMissingCredentials  = errors.New("missing credentials")
)

// API - the backend operations the use cases need
type API interface {
	// Login - exchange credentials for a session token
	Login(ctx context.Context, email, password string) (string, error)
	// Signup - register a new account
	Signup(ctx context.Context, email, password string) (*entity.User, error)
	// SocialLogin - exchange a provider token for a session token
	SocialLogin(ctx context.Context, provider, providerToken string) (string, error)
	// ListSubscriptions - fetch the full subscription list
	ListSubscriptions(ctx context.Context) ([]entity.Subscription, error)
	// CreateSubscription - create one subscription from a draft
	CreateSubscription(ctx context.Context, draft entity.Subscription) (*entity.Subscription, error)
	// DeleteSubscription - delete one subscription by id
	DeleteSubscription(ctx context.Context, id int64) error
	// Summary - fetch the aggregated spending dashboard
	Summary(ctx context.Context) (*entity.SpendingSummary, error)
	// MerchantCancelLink - look up the curated cancellation link for a merchant
	MerchantCancelLink(ctx context.Context, merchant string) (*entity.MerchantLink, error)
	// ExchangeBankCode - trade a bank-link authorization code for a token
	ExchangeBankCode(ctx context.Context, code string) (string, error)
	// BankTransactions - fetch transactions for a linked bank
	BankTransactions(ctx context.Context, bankToken string) ([]entity.Transaction, error)
	// BankAccounts - list the linked accounts for a bank token
	BankAccounts(ctx context.Context, bankToken string) ([]entity.Account, error)
	// AnalyzeTransactions - run subscription detection over transactions
	AnalyzeTransactions(ctx context.Context, txs []entity.Transaction) ([]entity.DetectedSubscription, error)
	// AnalyzePDF - run subscription detection over a bank statement
	AnalyzePDF(ctx context.Context, filename string, content io.Reader) ([]entity.DetectedSubscription, error)
}

// ListCache - local persistence for the subscription list
type ListCache interface {
	// Load - read the cached list; empty when nothing was cached yet
	Load() ([]entity.Subscription, error)
	// Save - replace the cached list
	Save(subs []entity.Subscription) error
	// Append - add one record to the cached list
	Append(sub entity.Subscription) error
	// Clear - drop the cache
	Clear() error
}

// TokenStore - local persistence for the session token
type TokenStore interface {
	// Save - persist the session token
	Save(token string) error
	// Load - read the session token; fails when absent or expired
	Load() (string, error)
	// Clear - forget the session token
	Clear() error
}
