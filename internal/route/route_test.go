package route

import (
	"testing"

	"github.com/fletnix/fletnix/internal/domain"
)

func TestRouteRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		route Route
	}{
		{"default listing", Home(domain.DefaultQuery())},
		{"listing with filters", Home(domain.Query{Page: 3, Search: "dark", Type: "TV Show", Rating: "TV-MA", SortBy: "release_year", SortOrder: "desc"})},
		{"detail", Detail("s1234")},
		{"auth", Auth("")},
		{"auth with return target", Auth("/home?page=2&search=dark")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.route.String())
			if got != tc.route {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.route.String(), got, tc.route)
			}
		})
	}
}

func TestParseFallsBackToListing(t *testing.T) {
	cases := []string{"", "/", "/nowhere", "/movie/"}
	for _, raw := range cases {
		got := Parse(raw)
		want := Home(domain.DefaultQuery())
		if got != want {
			t.Errorf("Parse(%q) = %+v, want default listing", raw, got)
		}
	}
}

func TestGuard(t *testing.T) {
	t.Run("auth route always allowed", func(t *testing.T) {
		if d := Check(Auth(""), false); !d.Allowed {
			t.Error("auth route should not require a session")
		}
	})

	t.Run("authenticated passes", func(t *testing.T) {
		if d := Check(Detail("s1"), true); !d.Allowed {
			t.Error("authenticated navigation should be allowed")
		}
	})

	t.Run("denied navigation carries the target", func(t *testing.T) {
		target := Home(domain.DefaultQuery().WithSearch("dark").WithPage(2))
		d := Check(target, false)
		if d.Allowed {
			t.Fatal("unauthenticated navigation should be denied")
		}
		if d.Redirect.Name != NameAuth {
			t.Fatalf("redirect = %+v, want auth route", d.Redirect)
		}
		if resumed := Parse(d.Redirect.ReturnTo); resumed != target {
			t.Errorf("return target parses to %+v, want %+v", resumed, target)
		}
	})
}
