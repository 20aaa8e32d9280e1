package api

import "github.com/fletnix/fletnix/internal/domain"

// mapShow converts a wire show to the domain entity
func mapShow(dto showDTO) domain.Show {
	id := dto.ShowID
	if id == "" {
		id = dto.MongoID
	}
	return domain.Show{
		ID:          id,
		Type:        dto.Type,
		Title:       dto.Title,
		Director:    dto.Director,
		Cast:        dto.Cast,
		Country:     dto.Country,
		DateAdded:   dto.DateAdded,
		ReleaseYear: dto.ReleaseYear,
		Rating:      dto.Rating,
		Duration:    dto.Duration,
		Genres:      dto.ListedIn,
		Description: dto.Description,
	}
}

// mapShows converts a slice of wire shows
func mapShows(dtos []showDTO) []domain.Show {
	shows := make([]domain.Show, len(dtos))
	for i, dto := range dtos {
		shows[i] = mapShow(dto)
	}
	return shows
}
