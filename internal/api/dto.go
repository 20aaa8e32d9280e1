package api

import "github.com/fletnix/fletnix/internal/domain"

// Wire types matching the catalog API's JSON payloads.

type showDTO struct {
	MongoID     string `json:"_id"`
	ShowID      string `json:"show_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Cast        string `json:"cast"`
	Country     string `json:"country"`
	DateAdded   string `json:"date_added"`
	ReleaseYear int    `json:"release_year"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
	ListedIn    string `json:"listed_in"`
	Description string `json:"description"`
}

type showsResponse struct {
	Shows      []showDTO             `json:"shows"`
	Pagination domain.Pagination     `json:"pagination"`
	Filters    domain.AppliedFilters `json:"filters"`
}

type showResponse struct {
	Show showDTO `json:"show"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}

type profileResponse struct {
	User domain.User `json:"user"`
}
