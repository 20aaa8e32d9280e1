package route

import (
	"net/url"
	"strings"

	"github.com/fletnix/fletnix/internal/domain"
)

// Name identifies a view.
type Name string

const (
	NameAuth   Name = "auth"
	NameHome   Name = "home"
	NameDetail Name = "detail"
)

// Route is the app's address: which view is showing and with what
// parameters. It is the single source of truth for the listing query, so
// re-entering a route reconstructs the view exactly.
type Route struct {
	Name     Name
	Query    domain.Query // listing query, home only
	ShowID   string       // detail only
	ReturnTo string       // serialized route to visit after login, auth only
}

// Home returns the listing route for a query.
func Home(q domain.Query) Route {
	return Route{Name: NameHome, Query: q}
}

// Detail returns the detail route for a show.
func Detail(showID string) Route {
	return Route{Name: NameDetail, ShowID: showID}
}

// Auth returns the login route, optionally carrying the route to return
// to after a successful login.
func Auth(returnTo string) Route {
	return Route{Name: NameAuth, ReturnTo: returnTo}
}

// Parse builds a Route from its serialized form. Unknown paths fall back
// to the default listing route.
func Parse(raw string) Route {
	path := raw
	query := ""
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		path, query = raw[:i], raw[i+1:]
	}
	path = strings.Trim(path, "/")
	values, _ := url.ParseQuery(query)

	switch {
	case path == "auth":
		return Auth(values.Get("returnUrl"))
	case strings.HasPrefix(path, "movie/"):
		if id := strings.TrimPrefix(path, "movie/"); id != "" {
			return Detail(id)
		}
		return Home(domain.DefaultQuery())
	default:
		return Home(domain.ParseQuery(values))
	}
}

// String serializes the route. Listing query fields at their defaults
// are omitted, so Parse(r.String()) == r for every reachable route.
func (r Route) String() string {
	switch r.Name {
	case NameAuth:
		if r.ReturnTo != "" {
			v := url.Values{}
			v.Set("returnUrl", r.ReturnTo)
			return "/auth?" + v.Encode()
		}
		return "/auth"
	case NameDetail:
		return "/movie/" + r.ShowID
	default:
		if encoded := r.Query.Values().Encode(); encoded != "" {
			return "/home?" + encoded
		}
		return "/home"
	}
}
