package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamPage     = "page"
	ParamPageSize = "pageSize"
	ParamSearch   = "q"
)

// PageRequest represents a client request for a page of data with an optional search term.
type PageRequest struct {
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Search   *string `json:"q,omitempty"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
// Page is capped so that Offset cannot overflow; a capped page is still past
// any real result set and yields an empty page.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
	if maxPage := math.MaxInt / r.PageSize; r.Page > maxPage {
		r.Page = maxPage
	}
}

// Offset calculates the number of records to skip based on page and page size.
// It is only overflow safe on a normalized request.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery parses page, pageSize and q from URL query values.
// Missing or non-numeric numbers fall back to the defaults; a blank q is ignored.
// The result is normalized according to the provided config.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(strings.TrimSpace(values.Get(ParamPage)))
	pageSize, _ := strconv.Atoi(strings.TrimSpace(values.Get(ParamPageSize)))

	var search *string
	if s := values.Get(ParamSearch); strings.TrimSpace(s) != "" {
		search = &s
	}

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	}

	req.Normalize(cfg)
	return req
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPageResult creates a PageResult with TotalPages = ceil(total / pageSize).
// An empty result set has zero pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
