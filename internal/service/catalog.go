package service

import (
	"context"
	"log/slog"

	"github.com/fletnix/fletnix/internal/api"
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/session"
)

// CatalogService translates structured queries into catalog API requests.
// The bearer token is read from the session store at call time, so a
// login or logout takes effect on the very next request.
type CatalogService struct {
	client  *api.Client
	session *session.Store
	logger  *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(client *api.Client, store *session.Store, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{client: client, session: store, logger: logger}
}

// ListShows returns one page of shows matching the query
func (s *CatalogService) ListShows(ctx context.Context, q domain.Query) (domain.ShowPage, error) {
	page, err := s.client.ListShows(ctx, q, s.session.Token())
	if err != nil {
		return domain.ShowPage{}, err
	}
	s.logger.Debug("listed shows",
		"page", page.Pagination.CurrentPage,
		"total", page.Pagination.TotalCount,
		"search", q.Search,
	)
	return page, nil
}

// GetShow returns a single show by identifier
func (s *CatalogService) GetShow(ctx context.Context, id string) (domain.Show, error) {
	return s.client.GetShow(ctx, id, s.session.Token())
}

// GetFilterOptions returns the filter control vocabularies
func (s *CatalogService) GetFilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	return s.client.GetFilterOptions(ctx, s.session.Token())
}

// GetStats returns the catalog-wide overview counts
func (s *CatalogService) GetStats(ctx context.Context) (domain.ShowStats, error) {
	return s.client.GetStats(ctx, s.session.Token())
}
