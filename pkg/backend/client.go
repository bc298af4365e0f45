// Package backend talks to the AI service that does image recognition, chat
// completion and macro bookkeeping.
package backend

import (
	"Meal-Planner-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	HealthTimeout  = 5 * time.Second
)

type (
	Client interface {
		Health(ctx context.Context) error
		Chat(ctx context.Context, body any) (json.RawMessage, error)
		SaveMacros(ctx context.Context, body map[string]any) ([]byte, error)
		GetUserMacros(ctx context.Context, username, date string) (json.RawMessage, error)
		GetUserWeeklyMacros(ctx context.Context, username, startDate, endDate string) (json.RawMessage, error)
		AnalyzeFoodMacros(ctx context.Context, form Form) (json.RawMessage, error)
		IdentifyIngredients(ctx context.Context, file File) (json.RawMessage, error)
	}

	// File is one part of a multipart upload.
	File struct {
		FieldName   string
		FileName    string
		ContentType string
		Data        []byte
	}

	Form struct {
		Fields map[string]string
		Files  []File
	}

	Option func(*client)

	client struct {
		baseURL    string
		httpClient *http.Client
	}
)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(baseURL string, opts ...Option) Client {
	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

func (c *client) Chat(ctx context.Context, body any) (json.RawMessage, error) {
	req, err := c.newJSONRequest(ctx, "/chat", body)
	if err != nil {
		return nil, err
	}
	return c.doJSON(req)
}

// SaveMacros returns the raw response body so callers can decide how to treat
// a successful reply that is not JSON.
func (c *client) SaveMacros(ctx context.Context, body map[string]any) ([]byte, error) {
	req, err := c.newJSONRequest(ctx, "/save-macros", body)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *client) GetUserMacros(ctx context.Context, username, date string) (json.RawMessage, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	return c.get(ctx, "/get-user-macros/"+url.PathEscape(username), query)
}

func (c *client) GetUserWeeklyMacros(ctx context.Context, username, startDate, endDate string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)
	return c.get(ctx, "/get-user-weekly-macros/"+url.PathEscape(username), query)
}

func (c *client) AnalyzeFoodMacros(ctx context.Context, form Form) (json.RawMessage, error) {
	req, err := c.newMultipartRequest(ctx, "/analyze-food-macros", form)
	if err != nil {
		return nil, err
	}
	return c.doJSON(req)
}

func (c *client) IdentifyIngredients(ctx context.Context, file File) (json.RawMessage, error) {
	if file.FieldName == "" {
		file.FieldName = "file"
	}
	req, err := c.newMultipartRequest(ctx, "/identify-ingredients", Form{Files: []File{file}})
	if err != nil {
		return nil, err
	}
	return c.doJSON(req)
}

func (c *client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req)
}

func (c *client) newJSONRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *client) newMultipartRequest(ctx context.Context, path string, form Form) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range form.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}

	for _, file := range form.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(file.FieldName), escapeQuotes(file.FileName)))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}

// do returns the response body of a 2xx reply. Other statuses become a
// *domain.UpstreamError carrying the body text.
func (c *client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func (c *client) doJSON(req *http.Request) (json.RawMessage, error) {
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode response from %s: invalid JSON", req.URL.Path)
	}
	return json.RawMessage(body), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
