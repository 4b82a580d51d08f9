package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"subtrack/internal/entity"
)

// AnalyzeTransactions asks the backend's AI to pick subscriptions out
// of raw bank transactions. Low-confidence detections are already
// filtered server-side.
func (c *Client) AnalyzeTransactions(ctx context.Context, txs []entity.Transaction) ([]entity.DetectedSubscription, error) {
	body := map[string][]entity.Transaction{"transactions": txs}
	var resp detectionsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/ai/analyze-subscriptions", true, body, &resp); err != nil {
		return nil, err
	}
	return resp.Subscriptions, nil
}

// AnalyzePDF uploads a PDF bank statement for AI analysis.
func (c *Client) AnalyzePDF(ctx context.Context, filename string, content io.Reader) ([]entity.DetectedSubscription, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}

	var resp detectionsResponse
	if err := c.do(ctx, http.MethodPost, "/api/ai/analyze-pdf", true, w.FormDataContentType(), &buf, &resp); err != nil {
		return nil, err
	}
	return resp.Subscriptions, nil
}
