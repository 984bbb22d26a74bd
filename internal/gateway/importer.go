package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/buildflow/client/internal/core/domain"
)

// ImportCSV uploads a CSV file; parsing and row validation are server-side.
func (c *Client) ImportCSV(ctx context.Context, filename string, file io.Reader) (*domain.ImportReport, error) {
	return c.upload(ctx, "/api/import/csv", filename, file)
}

// ImportExcel uploads a spreadsheet; parsing happens server-side.
func (c *Client) ImportExcel(ctx context.Context, filename string, file io.Reader) (*domain.ImportReport, error) {
	return c.upload(ctx, "/api/import/excel", filename, file)
}

// upload posts a multipart form with a single "file" part. It bypasses the
// JSON send helper but applies the same bearer and 401 policy.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader) (*domain.ImportReport, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.attachBearer(req, nil)

	var report domain.ImportReport
	if err := c.roundTrip(req, request{group: "import", path: path, out: &report}); err != nil {
		return nil, err
	}
	return &report, nil
}
