// Package client talks to the remote document-parsing service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/docparse/docparse/internal/document"
)

// StatusError is returned when the parsing service responds with a non-2xx
// status. The body is not inspected beyond the code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// ParseRequest carries one file submission and its configuration.
type ParseRequest struct {
	Filename      string
	File          io.Reader
	LoadingMethod string
	ParsingOption string
	FileType      document.FileType
}

// parseResponse is the wire shape of a successful /parse reply.
type parseResponse struct {
	ParsedContent document.ParsedDocument `json:"parsed_content"`
}

// Client is an HTTP client for the parsing service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL. A zero timeout falls back
// to 5 minutes; parsing large PDFs is slow.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Ping checks whether the parsing service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("parsing service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}

// Parse submits one document and returns the structured result. Non-2xx
// responses yield a *StatusError; transport and decode failures are returned
// as-is for the caller to surface.
func (c *Client) Parse(ctx context.Context, req ParseRequest) (*document.ParsedDocument, error) {
	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &parsed.ParsedContent, nil
}

// encodeMultipart builds the multipart/form-data body the service expects:
// fields file, loading_method, parsing_option and file_type.
func encodeMultipart(req ParseRequest) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", req.Filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"loading_method": req.LoadingMethod,
		"parsing_option": req.ParsingOption,
		"file_type":      string(req.FileType),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}
