package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/entity"
)

type staticTokens string

func (s staticTokens) Load() (string, error) { return string(s), nil }

type noTokens struct{}

func (noTokens) Load() (string, error) { return "", io.ErrUnexpectedEOF }

func TestLogin(t *testing.T) {
	t.Run("ok, form encoded credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			assert.Empty(t, r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "a@b.dk", r.PostForm.Get("username"))
			assert.Equal(t, "secret", r.PostForm.Get("password"))

			json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-123", TokenType: "bearer"})
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens(""))
		token, err := c.Login(context.Background(), "a@b.dk", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("err, 401 means wrong credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens(""))
		_, err := c.Login(context.Background(), "a@b.dk", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestListSubscriptions(t *testing.T) {
	t.Run("ok, bearer token attached", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]entity.Subscription{
				{ID: 1, Title: "Netflix", Amount: 129, Currency: "DKK"},
			})
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("tok-123"))
		subs, err := c.ListSubscriptions(context.Background())
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, "Netflix", subs[0].Title)
	})

	t.Run("err, no stored token fails before the request", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))
		defer srv.Close()

		c := New(srv.URL, noTokens{})
		_, err := c.ListSubscriptions(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.False(t, called)
	})

	t.Run("err, session rejected maps to ErrNotAuthenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("stale"))
		_, err := c.ListSubscriptions(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}

func TestCreateSubscription(t *testing.T) {
	t.Run("err, invalid draft never reaches the wire", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("tok"))
		_, err := c.CreateSubscription(context.Background(), entity.Subscription{
			Title:       "",
			Amount:      -1,
			RenewalDate: "not-a-date",
		})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, http.StatusUnprocessableEntity, ve.Status)
		assert.False(t, called)
	})

	t.Run("ok, backend record returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"confidence_score":88`)

			var in SubscriptionInput
			require.NoError(t, json.Unmarshal(raw, &in))
			created := entity.Subscription{
				ID:          42,
				Title:       *in.Title,
				Amount:      *in.Amount,
				RenewalDate: *in.RenewalDate,
				Currency:    in.Currency,
			}
			json.NewEncoder(w).Encode(created)
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("tok"))
		created, err := c.CreateSubscription(context.Background(), entity.Subscription{
			Title:       "Netflix",
			Amount:      129,
			RenewalDate: "2026-09-01",
			Currency:    "DKK",
			Confidence:  88,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 42, created.ID)
		assert.Equal(t, "DKK", created.Currency)
	})
}

func TestDeleteSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/subscriptions/7", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok"))
	require.NoError(t, c.DeleteSubscription(context.Background(), 7))
}

func TestBankCalls(t *testing.T) {
	t.Run("exchange code is unauthenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tink/token", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(TokenResponse{AccessToken: "bank-tok"})
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("tok"))
		token, err := c.ExchangeBankCode(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "bank-tok", token)
	})

	t.Run("transactions unwrap and scale", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "bank-tok", r.URL.Query().Get("token"))
			io.WriteString(w, `{"transactions":[{
				"id":"t1",
				"descriptions":{"display":"Netflix"},
				"amount":{"value":{"unscaledValue":"-12900","scale":"2"},"currencyCode":"DKK"},
				"dates":{"booked":"2026-08-01"}
			}]}`)
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("tok"))
		txs, err := c.BankTransactions(context.Background(), "bank-tok")
		require.NoError(t, err)
		require.Len(t, txs, 1)

		amount, ok := txs[0].Amount.Value.Float()
		require.True(t, ok)
		assert.InDelta(t, 129.0, amount, 0.001)
		assert.Equal(t, "Netflix", txs[0].Descriptions.Text())
	})
}

func TestMapError(t *testing.T) {
	t.Run("4xx carries the backend detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"detail": "renewal_date malformed"})
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("tok"))
		_, err := c.Summary(context.Background())

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "renewal_date malformed", ve.Detail)
	})

	t.Run("5xx maps to UnexpectedError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, "upstream down")
		}))
		defer srv.Close()

		c := New(srv.URL, staticTokens("tok"))
		_, err := c.Summary(context.Background())

		var ue *UnexpectedError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, http.StatusBadGateway, ue.Status)
		assert.Equal(t, "upstream down", ue.Detail)
	})
}

func TestAnalyzeTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ai/analyze-subscriptions", r.URL.Path)

		var body map[string][]entity.Transaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body["transactions"], 1)
		assert.Equal(t, "NETFLIX.COM", body["transactions"][0].Descriptions.Display)

		io.WriteString(w, `{"subscriptions":[{"name":"Netflix","amount":129,"category":"Streaming & Underholdning","frequency":"måned","confidence":92,"renewal_date":"2026-09-10","transaction_date":"2026-08-10"}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok"))
	detections, err := c.AnalyzeTransactions(context.Background(), []entity.Transaction{
		{Descriptions: entity.TransactionDescription{Display: "NETFLIX.COM"}},
	})
	require.NoError(t, err)
	require.Len(t, detections, 1)

	det := detections[0]
	assert.Equal(t, "Netflix", det.Name)
	assert.Equal(t, 92, det.Confidence)
	assert.Equal(t, "2026-09-10", det.RenewalDate)
	assert.Equal(t, "2026-08-10", det.TransactionDate)
}

func TestAnalyzePDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/analyze-pdf", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "statement.pdf", header.Filename)

		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-fake", string(content))

		io.WriteString(w, `{"subscriptions":[{"name":"Netflix","amount":129,"confidence":90}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok"))
	detections, err := c.AnalyzePDF(context.Background(), "statement.pdf", strings.NewReader("%PDF-fake"))
	require.NoError(t, err)
	require.Len(t, detections, 1)
	assert.Equal(t, 90, detections[0].Confidence)
}
