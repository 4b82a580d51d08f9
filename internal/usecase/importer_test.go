package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/entity"
	"subtrack/internal/logo"
)

func Test_importer_ImportFromBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logos := logo.NewResolver()

	t.Run("ok, no transactions means no analysis", func(t *testing.T) {
		ctx := context.Background()
		api := NewMockAPI(ctrl)
		api.EXPECT().BankTransactions(ctx, "bank-tok").Times(1).Return(nil, nil)
		api.EXPECT().AnalyzeTransactions(gomock.Any(), gomock.Any()).Times(0)

		uc := NewImporter(api, NewMockListCache(ctrl), logos)
		created, err := uc.ImportFromBank(ctx, "bank-tok")
		require.NoError(t, err)
		assert.Empty(t, created)
	})

	t.Run("ok, detections created and enriched", func(t *testing.T) {
		ctx := context.Background()
		txs := []entity.Transaction{{ID: "t1"}}
		detections := []entity.DetectedSubscription{
			{Name: "NETFLIX *PREMIUM", Amount: 129, Frequency: "måned", Confidence: 92, RenewalDate: "2026-09-10"},
		}

		api := NewMockAPI(ctrl)
		cache := NewMockListCache(ctrl)
		api.EXPECT().BankTransactions(ctx, "bank-tok").Times(1).Return(txs, nil)
		api.EXPECT().AnalyzeTransactions(ctx, txs).Times(1).Return(detections, nil)
		api.EXPECT().CreateSubscription(ctx, gomock.Any()).Times(1).
			DoAndReturn(func(_ context.Context, draft entity.Subscription) (*entity.Subscription, error) {
				assert.Equal(t, "Netflix Premium", draft.Title)
				assert.Equal(t, "netflix.com", draft.Domain)
				assert.Equal(t, "Streaming & Underholdning", draft.Category)
				assert.Equal(t, "tink", draft.Source)
				assert.Equal(t, 92, draft.Confidence)
				draft.ID = 11
				return &draft, nil
			})
		cache.EXPECT().Append(gomock.Any()).Times(1).Return(nil)

		uc := NewImporter(api, cache, logos)
		created, err := uc.ImportFromBank(ctx, "bank-tok")
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.EqualValues(t, 11, created[0].ID)
	})

	t.Run("ok, one failure does not stop the batch", func(t *testing.T) {
		ctx := context.Background()
		txs := []entity.Transaction{{ID: "t1"}}
		detections := []entity.DetectedSubscription{
			{Name: "Netflix", Amount: 129, RenewalDate: "2026-09-10"},
			{Name: "Spotify", Amount: 109, RenewalDate: "2026-09-12"},
		}
		expected := errors.New("create error")

		api := NewMockAPI(ctrl)
		cache := NewMockListCache(ctrl)
		api.EXPECT().BankTransactions(ctx, "bank-tok").Return(txs, nil)
		api.EXPECT().AnalyzeTransactions(ctx, txs).Return(detections, nil)
		api.EXPECT().CreateSubscription(ctx, gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, draft entity.Subscription) (*entity.Subscription, error) {
				if draft.Title == "Netflix" {
					return nil, expected
				}
				draft.ID = 12
				return &draft, nil
			})
		cache.EXPECT().Append(gomock.Any()).Times(1).Return(nil)

		uc := NewImporter(api, cache, logos)
		created, err := uc.ImportFromBank(ctx, "bank-tok")
		assert.ErrorIs(t, err, expected)
		require.Len(t, created, 1)
		assert.Equal(t, "Spotify", created[0].Title)
	})

	t.Run("ok, missing renewal date defaults a month out", func(t *testing.T) {
		ctx := context.Background()
		api := NewMockAPI(ctrl)
		cache := NewMockListCache(ctrl)
		api.EXPECT().BankTransactions(ctx, "bank-tok").Return([]entity.Transaction{{ID: "t1"}}, nil)
		api.EXPECT().AnalyzeTransactions(ctx, gomock.Any()).
			Return([]entity.DetectedSubscription{{Name: "Spotify", Amount: 109}}, nil)
		api.EXPECT().CreateSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, draft entity.Subscription) (*entity.Subscription, error) {
				assert.Equal(t, "2026-09-29", draft.RenewalDate)
				return &draft, nil
			})
		cache.EXPECT().Append(gomock.Any()).Return(nil)

		uc := NewImporter(api, cache, logos)
		uc.now = func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }

		_, err := uc.ImportFromBank(ctx, "bank-tok")
		require.NoError(t, err)
	})
}
