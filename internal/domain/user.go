package domain

// User is the authenticated identity cached alongside the session token.
type User struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Age     int      `json:"age"`
	IsAdult bool     `json:"isAdult"`
	Roles   []string `json:"roles,omitempty"`
}
