// Package api is the HTTP client of the PlantPal REST API. Every request
// carries the bearer token set with SetToken.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New returns a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ---- auth ----

func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var out models.TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signin", models.Credentials{Email: email, Password: password}, &out)
	return out.Token, err
}

func (c *Client) SignUp(ctx context.Context, fullName, email, password string) (string, error) {
	var out models.TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signup", models.Credentials{FullName: fullName, Email: email, Password: password}, &out)
	return out.Token, err
}

// ---- plants ----

func (c *Client) ListPlants(ctx context.Context) ([]models.Plant, error) {
	var out []models.Plant
	err := c.doJSON(ctx, http.MethodGet, "/plants", nil, &out)
	return out, err
}

// CreatePlant uploads draft as a multipart form with an optional photo.
func (c *Client) CreatePlant(ctx context.Context, draft models.PlantDraft, photo *models.Photo) (models.Plant, error) {
	fields := map[string]string{
		"name":                 draft.Name,
		"scientificName":       draft.ScientificName,
		"location":             draft.Location,
		"wateringFrequency":    strconv.Itoa(draft.WateringFrequency),
		"fertilizingFrequency": strconv.Itoa(draft.FertilizingFrequency),
		"groomingFrequency":    strconv.Itoa(draft.GroomingFrequency),
		"sunlight":             draft.Sunlight,
		"humidity":             draft.Humidity,
		"notes":                draft.Notes,
		"fertilizerDetails":    draft.FertilizerDetails,
	}
	var out models.Plant
	err := c.doMultipart(ctx, "/plants", fields, "photo", photo, &out)
	return out, err
}

// UpdatePlant sends p as a merge patch and returns the stored record.
func (c *Client) UpdatePlant(ctx context.Context, p models.Plant) (models.Plant, error) {
	var out models.Plant
	err := c.doJSON(ctx, http.MethodPut, "/plants/"+url.PathEscape(p.ID), p, &out)
	return out, err
}

func (c *Client) DeletePlant(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/plants/"+url.PathEscape(id), nil, nil)
}

func (c *Client) LogActivity(ctx context.Context, id, activity string) (models.Plant, error) {
	var out models.Plant
	body := map[string]string{"activity": activity}
	err := c.doJSON(ctx, http.MethodPost, "/plants/"+url.PathEscape(id)+"/activity", body, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var out models.Stats
	err := c.doJSON(ctx, http.MethodGet, "/stats", nil, &out)
	return out, err
}

// ---- journal ----

func (c *Client) ListJournal(ctx context.Context) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	err := c.doJSON(ctx, http.MethodGet, "/journal", nil, &out)
	return out, err
}

func (c *Client) CreateJournalEntry(ctx context.Context, title, content string, file *models.Photo) (models.JournalEntry, error) {
	var out models.JournalEntry
	err := c.doMultipart(ctx, "/journal", map[string]string{"title": title, "content": content}, "file", file, &out)
	return out, err
}

func (c *Client) DeleteJournalEntry(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/journal/"+url.PathEscape(id), nil, nil)
}

// ---- articles ----

func (c *Client) ListArticles(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	err := c.doJSON(ctx, http.MethodGet, "/articles", nil, &out)
	return out, err
}

// ---- assistant ----

func (c *Client) Chat(ctx context.Context, prompt string, history []models.ChatTurn) (string, error) {
	var out models.ChatResponse
	err := c.doJSON(ctx, http.MethodPost, "/ai/chat", models.ChatRequest{Prompt: prompt, History: history}, &out)
	return out.Response, err
}

func (c *Client) Identify(ctx context.Context, img models.Photo) (models.Identification, error) {
	var out models.Identification
	err := c.doMultipart(ctx, "/ai/identify", nil, "image", &img, &out)
	return out, err
}

func (c *Client) Autofill(ctx context.Context, img models.Photo) (models.CareDetails, error) {
	var out models.CareDetails
	err := c.doMultipart(ctx, "/ai/autofill", nil, "image", &img, &out)
	return out, err
}

func (c *Client) FertilizerSuggestion(ctx context.Context, name, scientificName string) (string, error) {
	var out models.FertilizerSuggestion
	err := c.doJSON(ctx, http.MethodPost, "/ai/fertilizer-suggestion", models.FertilizerRequest{Name: name, ScientificName: scientificName}, &out)
	return out.Suggestion, err
}

// ---- plumbing ----

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	ct := ""
	if in != nil {
		ct = "application/json"
	}
	return c.do(ctx, method, path, body, ct, out)
}

func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileField string, file *models.Photo, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}

	if file != nil && len(file.Data) > 0 {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, file.Name))
		ct := file.ContentType
		if ct == "" {
			ct = http.DetectContentType(file.Data)
		}
		h.Set("Content-Type", ct)

		part, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := part.Write(file.Data); err != nil {
			return err
		}
	}

	if err := mw.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, &buf, mw.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e models.ErrorResponse
		_ = json.Unmarshal(data, &e)
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
