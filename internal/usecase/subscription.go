package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"subtrack/internal/classify"
	"subtrack/internal/entity"
)

// SourceManual marks records the user typed in by hand.
const SourceManual = "manual"

// ListView - the subscription list split the way the list screen shows
// it, renewals inside the upcoming window first
type ListView struct {
	Upcoming []entity.Subscription
	Active   []entity.Subscription
}

// Subscription coordinates the subscription list: backend fetches, the
// on-disk cache and the derived list views
type Subscription struct {
	api   API
	cache ListCache

	mu         sync.Mutex
	refreshing bool
	snapshot   []entity.Subscription
}

// NewSubscription creates the list use case over a backend and a cache
func NewSubscription(api API, cache ListCache) *Subscription {
	return &Subscription{
		api:   api,
		cache: cache,
	}
}

// PrimeFromCache seeds the in-memory snapshot from the cache so the
// list can render before the first network round trip
func (s *Subscription) PrimeFromCache() ([]entity.Subscription, error) {
	subs, err := s.cache.Load()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.snapshot = subs
	s.mu.Unlock()
	return subs, nil
}

// Refresh fetches the authoritative list and replaces snapshot and
// cache. At most one refresh runs at a time; a concurrent caller gets
// ErrRefreshInFlight instead of a duplicate request.
func (s *Subscription) Refresh(ctx context.Context) ([]entity.Subscription, error) {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return nil, ErrRefreshInFlight
	}
	s.refreshing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	subs, err := s.api.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = subs
	s.mu.Unlock()

	if err := s.cache.Save(subs); err != nil {
		return subs, fmt.Errorf("cache list: %w", err)
	}
	return subs, nil
}

// Snapshot returns a copy of the current in-memory list
func (s *Subscription) Snapshot() []entity.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Subscription, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// ListView filters the snapshot by category and splits it around the
// upcoming renewal window, both halves sorted by key
func (s *Subscription) ListView(category string, key classify.SortKey, now time.Time) ListView {
	subs := classify.FilterCategory(s.Snapshot(), category)
	upcoming, active := classify.Partition(subs, now, key)
	return ListView{Upcoming: upcoming, Active: active}
}

// Add validates a manual draft, creates it on the backend and appends
// the created record to snapshot and cache without a full refresh
func (s *Subscription) Add(ctx context.Context, draft entity.Subscription) (*entity.Subscription, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, fmt.Errorf("%w: empty title", ErrInvalidSubscription)
	}
	if draft.Amount < 0 {
		return nil, fmt.Errorf("%w: negative amount", ErrInvalidSubscription)
	}
	if _, ok := entity.ParseWireDate(draft.RenewalDate); !ok {
		return nil, fmt.Errorf("%w: bad renewal date %q", ErrInvalidSubscription, draft.RenewalDate)
	}
	if draft.Currency == "" {
		draft.Currency = entity.DefaultCurrency
	}
	if draft.Frequency == "" {
		draft.Frequency = entity.DefaultFrequency
	}
	if draft.Source == "" {
		draft.Source = SourceManual
	}

	created, err := s.api.CreateSubscription(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = append(s.snapshot, *created)
	s.mu.Unlock()

	if err := s.cache.Append(*created); err != nil {
		return created, fmt.Errorf("cache append: %w", err)
	}
	return created, nil
}

// Remove deletes one subscription by id and drops it from snapshot and
// cache
func (s *Subscription) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.api.DeleteSubscription(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := make([]entity.Subscription, 0, len(s.snapshot))
	for _, sub := range s.snapshot {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	s.snapshot = kept
	s.mu.Unlock()

	if err := s.cache.Save(kept); err != nil {
		return fmt.Errorf("cache list: %w", err)
	}
	return nil
}

// Summary fetches the aggregated spending dashboard
func (s *Subscription) Summary(ctx context.Context) (*entity.SpendingSummary, error) {
	return s.api.Summary(ctx)
}

// CancelLink asks the backend for the curated cancellation link of a
// merchant. Empty when the backend does not know the merchant; callers
// fall back to the locally resolved domain.
func (s *Subscription) CancelLink(ctx context.Context, merchant string) (string, error) {
	merchant = strings.TrimSpace(merchant)
	if merchant == "" {
		return "", fmt.Errorf("%w: empty merchant", ErrInvalidSubscription)
	}
	link, err := s.api.MerchantCancelLink(ctx, merchant)
	if err != nil {
		return "", err
	}
	return link.CancelURL, nil
}
