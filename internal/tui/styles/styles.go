package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	BrandRed   = lipgloss.Color("#E50914")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
	Yellow     = lipgloss.Color("#F59E0B")
	SlateLight = lipgloss.Color("#374151")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(BrandRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(BrandRed).
			Padding(0, 1)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Italic(true)
)

// Panel styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(BrandRed)

	ViewStyle = lipgloss.NewStyle().
			Padding(1, 2)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Red).
				Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BrandRed).
			Padding(1, 2)
)

// RatingStyle returns the badge style for a content rating, mirroring
// the catalog's green/blue/yellow/red severity scale.
func RatingStyle(rating string) lipgloss.Style {
	base := lipgloss.NewStyle().Foreground(White).Padding(0, 1)
	switch rating {
	case "G", "TV-G", "TV-Y":
		return base.Background(Green)
	case "PG", "TV-PG", "TV-Y7":
		return base.Background(Blue)
	case "PG-13", "TV-14":
		return base.Background(Yellow)
	case "R", "TV-MA", "NC-17":
		return base.Background(Red)
	default:
		return base.Background(SlateLight)
	}
}

// SpinnerFrames are the animation frames for loading indicators
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
