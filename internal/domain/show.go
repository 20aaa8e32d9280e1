package domain

import "strings"

// ShowType distinguishes catalog entry kinds. Values match the API's
// type field verbatim.
const (
	ShowTypeMovie  = "Movie"
	ShowTypeTVShow = "TV Show"
)

// maxCastNames caps the cast list shown on the detail view.
const maxCastNames = 10

// Show represents one catalog entry. Director, Cast, Country and Genres
// are comma-delimited free text as served by the API; use the derived
// list accessors for display.
type Show struct {
	ID          string // Stable public identifier, used in routes
	Type        string // "Movie" or "TV Show"
	Title       string // Display title
	Director    string // Comma-delimited director names
	Cast        string // Comma-delimited actor names
	Country     string // Comma-delimited country names
	DateAdded   string // Date the entry was added to the catalog
	ReleaseYear int    // Year of release
	Rating      string // Content rating (e.g. "PG-13", "TV-MA")
	Duration    string // Runtime or season count (e.g. "90 min", "2 Seasons")
	Genres      string // Comma-delimited genre names
	Description string // Plot synopsis
}

// IsMovie reports whether the entry is a movie.
func (s Show) IsMovie() bool { return s.Type == ShowTypeMovie }

// GenreList returns the individual genres.
func (s Show) GenreList() []string { return splitDelimited(s.Genres) }

// CastList returns up to 10 cast member names.
func (s Show) CastList() []string {
	names := splitDelimited(s.Cast)
	if len(names) > maxCastNames {
		names = names[:maxCastNames]
	}
	return names
}

// DirectorList returns the individual director names.
func (s Show) DirectorList() []string { return splitDelimited(s.Director) }

// CountryList returns the individual country names.
func (s Show) CountryList() []string { return splitDelimited(s.Country) }

// RatingDescription returns a human-readable explanation of the content
// rating, or "Not Rated" when the rating is absent.
func (s Show) RatingDescription() string {
	if s.Rating == "" {
		return "Not Rated"
	}
	if desc, ok := ratingDescriptions[s.Rating]; ok {
		return desc
	}
	return s.Rating
}

var ratingDescriptions = map[string]string{
	"G":     "General Audiences - All ages admitted",
	"PG":    "Parental Guidance Suggested",
	"PG-13": "Parents Strongly Cautioned - Ages 13+",
	"R":     "Restricted - Ages 17+",
	"NC-17": "No One 17 and Under Admitted",
	"TV-Y":  "Suitable for all children",
	"TV-Y7": "Suitable for ages 7 and up",
	"TV-G":  "General audience",
	"TV-PG": "Parental guidance suggested",
	"TV-14": "Parents strongly cautioned - Ages 14+",
	"TV-MA": "Mature audience - Ages 17+",
}

// splitDelimited splits comma-delimited free text, trimming whitespace
// and dropping empty segments. Order is preserved.
func splitDelimited(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
