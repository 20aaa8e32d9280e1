package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fletnix/fletnix/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListShowsParams(t *testing.T) {
	t.Run("default query omits empty filters", func(t *testing.T) {
		var captured *http.Request
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r.Clone(r.Context())
			w.Write([]byte(`{"shows":[],"pagination":{},"filters":{}}`))
		})

		if _, err := c.ListShows(context.Background(), domain.DefaultQuery(), "tok"); err != nil {
			t.Fatalf("ListShows() error: %v", err)
		}

		params := captured.URL.Query()
		for _, absent := range []string{"search", "type", "rating"} {
			if params.Has(absent) {
				t.Errorf("empty filter %q should not be sent, got %v", absent, params)
			}
		}
		want := map[string]string{"page": "1", "limit": "15", "sortBy": "title", "sortOrder": "asc"}
		for k, v := range want {
			if got := params.Get(k); got != v {
				t.Errorf("param %s = %q, want %q", k, got, v)
			}
		}
		if got := captured.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
	})

	t.Run("active filters are sent", func(t *testing.T) {
		var captured *http.Request
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r.Clone(r.Context())
			w.Write([]byte(`{"shows":[],"pagination":{},"filters":{}}`))
		})

		q := domain.Query{Page: 2, Search: "dark", Type: "Movie", Rating: "R", SortBy: "rating", SortOrder: "desc"}
		if _, err := c.ListShows(context.Background(), q, ""); err != nil {
			t.Fatalf("ListShows() error: %v", err)
		}

		params := captured.URL.Query()
		want := map[string]string{
			"page": "2", "limit": "15", "search": "dark", "type": "Movie",
			"rating": "R", "sortBy": "rating", "sortOrder": "desc",
		}
		for k, v := range want {
			if got := params.Get(k); got != v {
				t.Errorf("param %s = %q, want %q", k, got, v)
			}
		}
		if captured.Header.Get("Authorization") != "" {
			t.Error("empty token should send no Authorization header")
		}
	})
}

func TestListShowsMapping(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"shows": [
				{"_id":"mongo1","show_id":"s1","type":"Movie","title":"First","listed_in":"Dramas, Thrillers","release_year":2020},
				{"_id":"mongo2","type":"TV Show","title":"Second"}
			],
			"pagination": {"currentPage":2,"totalPages":9,"totalCount":130,"hasNextPage":true,"hasPrevPage":true},
			"filters": {"search":"","type":"","rating":"","sortBy":"title","sortOrder":"asc"}
		}`))
	})

	page, err := c.ListShows(context.Background(), domain.DefaultQuery(), "tok")
	if err != nil {
		t.Fatalf("ListShows() error: %v", err)
	}
	if len(page.Shows) != 2 {
		t.Fatalf("got %d shows, want 2", len(page.Shows))
	}
	if page.Shows[0].ID != "s1" {
		t.Errorf("show_id should win over _id, got %q", page.Shows[0].ID)
	}
	if page.Shows[1].ID != "mongo2" {
		t.Errorf("missing show_id should fall back to _id, got %q", page.Shows[1].ID)
	}
	if page.Shows[0].Genres != "Dramas, Thrillers" {
		t.Errorf("listed_in should map to genres, got %q", page.Shows[0].Genres)
	}
	if page.Pagination.TotalPages != 9 || !page.Pagination.HasNextPage {
		t.Errorf("pagination = %+v", page.Pagination)
	}
}

func TestErrorNormalization(t *testing.T) {
	t.Run("error field wins over message", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"search term too long","message":"Bad Request"}`))
		})
		_, err := c.ListShows(context.Background(), domain.DefaultQuery(), "tok")
		if err == nil || err.Error() != "search term too long" {
			t.Errorf("err = %v, want the error field verbatim", err)
		}
	})

	t.Run("message field used when error absent", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"something broke"}`))
		})
		_, err := c.ListShows(context.Background(), domain.DefaultQuery(), "tok")
		if err == nil || err.Error() != "something broke" {
			t.Errorf("err = %v, want the message field verbatim", err)
		}
	})

	t.Run("unparsable body falls back to status", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>oops</html>"))
		})
		_, err := c.ListShows(context.Background(), domain.DefaultQuery(), "tok")
		if err == nil || err.Error() != "unexpected status code: 502" {
			t.Errorf("err = %v, want status fallback", err)
		}
	})

	t.Run("404 maps to the not-found sentinel", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Show not found"}`))
		})
		_, err := c.GetShow(context.Background(), "missing", "tok")
		if !errors.Is(err, domain.ErrShowNotFound) {
			t.Errorf("err = %v, want ErrShowNotFound", err)
		}
	})

	t.Run("401 maps to the unauthorized sentinel", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid email or password"}`))
		})
		_, _, err := c.Login(context.Background(), "a@b.c", "nope")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("err = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("unreachable server maps to the offline sentinel", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close() // nothing is listening anymore
		c := NewClient(ts.URL, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
		_, err := c.ListShows(context.Background(), domain.DefaultQuery(), "tok")
		if !errors.Is(err, domain.ErrServerOffline) {
			t.Errorf("err = %v, want ErrServerOffline", err)
		}
	})
}

func TestLogin(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.Write([]byte(`{"message":"ok","token":"tok-1","user":{"id":"u1","email":"a@b.c","age":30,"isAdult":true}}`))
	})

	token, user, err := c.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token != "tok-1" {
		t.Errorf("token = %q", token)
	}
	if user.Email != "a@b.c" || !user.IsAdult {
		t.Errorf("user = %+v", user)
	}
}

func TestGetShowEscapesID(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"show":{"show_id":"weird/id","title":"X"}}`))
	})

	if _, err := c.GetShow(context.Background(), "weird/id", "tok"); err != nil {
		t.Fatalf("GetShow() error: %v", err)
	}
	if gotPath != "/shows/weird%2Fid" {
		t.Errorf("path = %q, want escaped id", gotPath)
	}
}
