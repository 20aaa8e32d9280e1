package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fletnix/fletnix/internal/domain"
)

// listParams serializes a query for the wire. Empty search/type/rating
// are omitted entirely so the server cannot distinguish an empty filter
// from an absent one; page, limit and sort are always sent.
func listParams(q domain.Query) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(domain.PageSize))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Rating != "" {
		params.Set("rating", q.Rating)
	}
	params.Set("sortBy", q.SortBy)
	params.Set("sortOrder", q.SortOrder)
	return params
}

// ListShows returns one page of shows matching the query
func (c *Client) ListShows(ctx context.Context, q domain.Query, token string) (domain.ShowPage, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/shows", listParams(q), nil, token)
	if err != nil {
		return domain.ShowPage{}, err
	}

	var resp showsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ShowPage{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return domain.ShowPage{
		Shows:      mapShows(resp.Shows),
		Pagination: resp.Pagination,
		Filters:    resp.Filters,
	}, nil
}

// GetShow returns a single show by identifier
func (c *Client) GetShow(ctx context.Context, id string, token string) (domain.Show, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/shows/"+url.PathEscape(id), nil, nil, token)
	if err != nil {
		return domain.Show{}, err
	}

	var resp showResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Show{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return mapShow(resp.Show), nil
}

// GetFilterOptions returns the filter control vocabularies
func (c *Client) GetFilterOptions(ctx context.Context, token string) (domain.FilterOptions, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/shows/filters/options", nil, nil, token)
	if err != nil {
		return domain.FilterOptions{}, err
	}

	var opts domain.FilterOptions
	if err := json.Unmarshal(body, &opts); err != nil {
		return domain.FilterOptions{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return opts, nil
}

// GetStats returns the catalog-wide overview counts
func (c *Client) GetStats(ctx context.Context, token string) (domain.ShowStats, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/shows/stats/overview", nil, nil, token)
	if err != nil {
		return domain.ShowStats{}, err
	}

	var stats domain.ShowStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return domain.ShowStats{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return stats, nil
}
