package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// ListParams selects a page of heroes. Zero values use the server defaults
// and a blank Query disables the nickname filter.
type ListParams struct {
	Page     int
	PageSize int
	Query    string
}

// Pagination describes the page returned by List.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Page is a page of heroes in display shape.
type Page struct {
	Data       []Superhero `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type rawPage struct {
	Data       []RawHero `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

type errorBody struct {
	Message string `json:"message"`
}

// Client calls the hero catalog API rooted at a base URL such as
// http://localhost:3000/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for baseURL. A nil httpClient uses a default client
// with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// List fetches one page of heroes, newest first.
func (c *Client) List(ctx context.Context, params ListParams) (Page, error) {
	values := url.Values{}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		values.Set("q", q)
	}

	path := "/heroes"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var raw rawPage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return Page{}, err
	}

	return Page{
		Data: MapHeroes(raw.Data),
		Pagination: Pagination{
			CurrentPage:  raw.Page,
			TotalPages:   raw.TotalPages,
			TotalItems:   raw.Total,
			ItemsPerPage: raw.PageSize,
		},
	}, nil
}

// Get fetches a hero by id.
func (c *Client) Get(ctx context.Context, id string) (Superhero, error) {
	var raw RawHero
	if err := c.do(ctx, http.MethodGet, heroPath(id), nil, &raw); err != nil {
		return Superhero{}, err
	}
	return MapHero(raw), nil
}

// Create stores hero and returns it as saved.
func (c *Client) Create(ctx context.Context, hero Superhero) (Superhero, error) {
	var raw RawHero
	if err := c.do(ctx, http.MethodPost, "/heroes", BuildPayload(hero), &raw); err != nil {
		return Superhero{}, err
	}
	return MapHero(raw), nil
}

// Update sends only the fields set in patch.
func (c *Client) Update(ctx context.Context, id string, patch SuperheroPatch) (Superhero, error) {
	var raw RawHero
	if err := c.do(ctx, http.MethodPatch, heroPath(id), BuildPatch(patch), &raw); err != nil {
		return Superhero{}, err
	}
	return MapHero(raw), nil
}

// Delete removes a hero and its images.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, heroPath(id), nil, nil)
}

func heroPath(id string) string {
	return "/heroes/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Code: CodeNetwork, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Code: CodeNetwork, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Code:    httpCode(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, data),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Code: CodeParse, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// errorMessage prefers the server's {message} body, then the raw text, then
// the status text.
func errorMessage(status int, data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var ce *Error
	ok := errors.As(err, &ce)
	return ce, ok
}
