package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"subtrack/internal/classify"
	"subtrack/internal/entity"
	"subtrack/internal/logo"
)

// Importer turns bank transactions and statement PDFs into created
// subscriptions
type Importer struct {
	api   API
	cache ListCache
	logos *logo.Resolver
	now   func() time.Time
}

// NewImporter creates the import use case
func NewImporter(api API, cache ListCache, logos *logo.Resolver) *Importer {
	return &Importer{
		api:   api,
		cache: cache,
		logos: logos,
		now:   time.Now,
	}
}

// ExchangeCode trades the bank-link authorization code for a bank
// access token
func (i *Importer) ExchangeCode(ctx context.Context, code string) (string, error) {
	return i.api.ExchangeBankCode(ctx, code)
}

// Accounts lists the linked bank accounts for a bank access token.
func (i *Importer) Accounts(ctx context.Context, bankToken string) ([]entity.Account, error) {
	return i.api.BankAccounts(ctx, bankToken)
}

// ImportFromBank pulls transactions for a linked bank, runs detection
// over them and creates one subscription per detection. A failure on a
// single record does not stop the batch.
func (i *Importer) ImportFromBank(ctx context.Context, bankToken string) ([]entity.Subscription, error) {
	txs, err := i.api.BankTransactions(ctx, bankToken)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}

	detections, err := i.api.AnalyzeTransactions(ctx, txs)
	if err != nil {
		return nil, err
	}
	return i.createDetected(ctx, detections, "tink")
}

// ImportFromPDF uploads a bank statement for analysis and creates the
// detected subscriptions
func (i *Importer) ImportFromPDF(ctx context.Context, filename string, content io.Reader) ([]entity.Subscription, error) {
	detections, err := i.api.AnalyzePDF(ctx, filename, content)
	if err != nil {
		return nil, err
	}
	return i.createDetected(ctx, detections, "pdf")
}

// createDetected maps detections to drafts and creates them one by one,
// collecting per-record failures instead of aborting
func (i *Importer) createDetected(ctx context.Context, detections []entity.DetectedSubscription, source string) ([]entity.Subscription, error) {
	var created []entity.Subscription
	var errs []error
	for _, det := range detections {
		draft := i.draftFromDetection(det, source)
		sub, err := i.api.CreateSubscription(ctx, draft)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", draft.Title, err))
			continue
		}
		created = append(created, *sub)
		if err := i.cache.Append(*sub); err != nil {
			errs = append(errs, fmt.Errorf("cache append: %w", err))
		}
	}
	return created, errors.Join(errs...)
}

// draftFromDetection normalizes one detection into a create draft. The
// merchant name is cleaned, categorized and resolved to a domain the
// same way a manual entry would be.
func (i *Importer) draftFromDetection(det entity.DetectedSubscription, source string) entity.Subscription {
	name := classify.CleanDescription(det.Name)
	category := det.Category
	if category == "" {
		category = classify.Categorize(name)
	}
	renewal := det.RenewalDate
	if _, ok := entity.ParseDate(renewal); !ok {
		renewal = i.now().AddDate(0, 1, 0).Format(entity.DateLayout)
	}
	if det.Source != "" {
		source = det.Source
	}

	draft := entity.Subscription{
		Title:           name,
		Amount:          det.Amount,
		Category:        category,
		RenewalDate:     renewal,
		TransactionDate: det.TransactionDate,
		Frequency:       det.Frequency,
		Confidence:      det.Confidence,
		Source:          source,
	}
	if domain := i.logos.Resolve(name); domain != "" {
		draft.Domain = domain
		draft.LogoURL = i.logos.LogoURL(domain, logo.SizeList)
	}
	return draft
}
