package domain

import (
	"net/url"
	"strconv"
)

// PageSize is the fixed number of shows per listing page.
const PageSize = 15

// Query defaults. A field at its default is omitted when the query is
// serialized, so a bare listing route always means the default query.
const (
	DefaultSortBy    = "title"
	DefaultSortOrder = "asc"
)

// Sort fields accepted by the API. Anything else falls back to the default.
var validSortFields = map[string]bool{
	"title":        true,
	"release_year": true,
	"date_added":   true,
	"rating":       true,
	"type":         true,
}

// Query is the structured listing request. Its canonical representation
// lives in the route query string; ParseQuery and Values round-trip it.
type Query struct {
	Page      int    // 1-based page number
	Search    string // Free-text search, empty = no filter
	Type      string // Show type filter, empty = any
	Rating    string // Content rating filter, empty = any
	SortBy    string // One of validSortFields
	SortOrder string // "asc" or "desc"
}

// DefaultQuery returns the query for a bare listing route.
func DefaultQuery() Query {
	return Query{
		Page:      1,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}
}

// ParseQuery builds a Query from route query parameters. Missing or
// unrecognized values take their defaults.
func ParseQuery(v url.Values) Query {
	q := DefaultQuery()

	if page, err := strconv.Atoi(v.Get("page")); err == nil && page > 1 {
		q.Page = page
	}
	q.Search = v.Get("search")
	q.Type = v.Get("type")
	q.Rating = v.Get("rating")

	if sortBy := v.Get("sortBy"); validSortFields[sortBy] {
		q.SortBy = sortBy
	}
	if sortOrder := v.Get("sortOrder"); sortOrder == "asc" || sortOrder == "desc" {
		q.SortOrder = sortOrder
	}

	return q
}

// Values serializes the query for the route, omitting every field that
// equals its default so ParseQuery(q.Values()) == q.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.Rating != "" {
		v.Set("rating", q.Rating)
	}
	if q.SortBy != DefaultSortBy {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != DefaultSortOrder {
		v.Set("sortOrder", q.SortOrder)
	}
	return v
}

// WithSearch returns the query with a new search term. The page resets
// to 1, as it does for every filter or sort change.
func (q Query) WithSearch(search string) Query {
	q.Search = search
	q.Page = 1
	return q
}

// WithType returns the query with a new type filter.
func (q Query) WithType(showType string) Query {
	q.Type = showType
	q.Page = 1
	return q
}

// WithRating returns the query with a new rating filter.
func (q Query) WithRating(rating string) Query {
	q.Rating = rating
	q.Page = 1
	return q
}

// WithSort returns the query with a new sort field and direction.
func (q Query) WithSort(sortBy, sortOrder string) Query {
	if !validSortFields[sortBy] {
		sortBy = DefaultSortBy
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = DefaultSortOrder
	}
	q.SortBy = sortBy
	q.SortOrder = sortOrder
	q.Page = 1
	return q
}

// WithPage returns the query on a different page. Other fields are
// preserved; changing only the page never resets filters.
func (q Query) WithPage(page int) Query {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// ActiveFilterCount returns how many of search/type/rating are set.
func (q Query) ActiveFilterCount() int {
	count := 0
	if q.Search != "" {
		count++
	}
	if q.Type != "" {
		count++
	}
	if q.Rating != "" {
		count++
	}
	return count
}

// HasFilters reports whether any filter is active.
func (q Query) HasFilters() bool { return q.ActiveFilterCount() > 0 }

// Pagination is the server-reported paging metadata for a listing page.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// AppliedFilters echoes the filter values the server actually applied.
type AppliedFilters struct {
	Search    string `json:"search"`
	Type      string `json:"type"`
	Rating    string `json:"rating"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// ShowPage is one page of listing results.
type ShowPage struct {
	Shows      []Show
	Pagination Pagination
	Filters    AppliedFilters
}

// FilterOptions is the vocabulary for the filter controls.
type FilterOptions struct {
	Types   []string `json:"types"`
	Ratings []string `json:"ratings"`
	Genres  []string `json:"genres"`
}

// ShowStats is the catalog-wide overview returned by the stats endpoint.
type ShowStats struct {
	TotalShows  int `json:"totalShows"`
	MovieCount  int `json:"movieCount"`
	TVShowCount int `json:"tvShowCount"`
}

// PageNumbers returns up to 5 page numbers centered on current, clamped
// to [1, total].
func PageNumbers(current, total int) []int {
	start := current - 2
	if start < 1 {
		start = 1
	}
	end := current + 2
	if end > total {
		end = total
	}
	var pages []int
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
