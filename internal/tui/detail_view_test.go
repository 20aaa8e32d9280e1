package tui

import (
	"errors"
	"testing"

	"github.com/fletnix/fletnix/internal/domain"
)

func TestDetailFailureKeepsShow(t *testing.T) {
	v := newDetailView(nil, DefaultKeyMap())
	v.mount("s1")
	v, _ = v.update(ShowLoadedMsg{Show: domain.Show{ID: "s1", Title: "First"}})

	v.mount("s2")
	v, _ = v.update(ShowFailedMsg{Err: errors.New("show not found")})

	if v.show == nil || v.show.Title != "First" {
		t.Errorf("prior show should stay on screen, got %+v", v.show)
	}
	if v.errMsg != "show not found" {
		t.Errorf("errMsg = %q", v.errMsg)
	}
	if v.loading {
		t.Error("loading flag should clear on failure")
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2021-09-25T00:00:00.000Z", "September 25, 2021"},
		{"2021-09-25", "September 25, 2021"},
		{"September 25, 2021", "September 25, 2021"},
		{"sometime last year", "sometime last year"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := formatDate(tc.raw); got != tc.want {
			t.Errorf("formatDate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
