package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func grids() (board, dirs []uint8) {
	board = make([]uint8, Cells)
	dirs = make([]uint8, Cells)
	board[5] = 1
	board[42] = 1
	dirs[42] = 3
	return board, dirs
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{Endpoint: srv.URL + "/", Timeout: time.Second, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestAdviseRoundTrip(t *testing.T) {
	var got actionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != ActionPath {
			t.Errorf("request = %s %s, want POST %s", r.Method, r.URL.Path, ActionPath)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		actions := make([]int, Cells)
		for i := range actions {
			actions[i] = i % 4
		}
		json.NewEncoder(w).Encode(map[string]any{"new_directions": actions})
	})

	board, dirs := grids()
	out, err := c.Advise(context.Background(), board, dirs)
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}

	if got.Board[5] != 1 || got.Board[42] != 1 || got.Directions[42] != 3 {
		t.Errorf("request grids not sent as integers: %+v", got)
	}
	want := make([]uint8, Cells)
	for i := range want {
		want[i] = uint8(i%4 + 1)
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("mapped directions (-want +got):\n%s", diff)
	}
}

func TestAdviseRejectsInvalidResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"malformed json", http.StatusOK, `{"new_directions": [`},
		{"missing field", http.StatusOK, `{"directions": []}`},
		{"short grid", http.StatusOK, `{"new_directions": [0, 1, 2]}`},
		{"non-integer values", http.StatusOK, `{"new_directions": [` + strings.Repeat(`"up",`, Cells-1) + `"up"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})
			board, dirs := grids()
			if _, err := c.Advise(context.Background(), board, dirs); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAdviseDisabled(t *testing.T) {
	c, err := New(Config{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Enabled() {
		t.Error("client without endpoint should be disabled")
	}
	board, dirs := grids()
	if _, err := c.Advise(context.Background(), board, dirs); !errors.Is(err, ErrDisabled) {
		t.Errorf("Advise() error = %v, want ErrDisabled", err)
	}

	var nilClient *Client
	if _, err := nilClient.Advise(context.Background(), board, dirs); !errors.Is(err, ErrDisabled) {
		t.Errorf("nil client error = %v, want ErrDisabled", err)
	}
}

func TestAdviseWrongGridSize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	if _, err := c.Advise(context.Background(), make([]uint8, 3), make([]uint8, Cells)); err == nil {
		t.Error("expected error for short board")
	}
}

func TestAdviseHonorsContext(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	board, dirs := grids()
	if _, err := c.Advise(ctx, board, dirs); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Advise() error = %v, want deadline exceeded", err)
	}
}

func TestNewRejectsBadEndpoint(t *testing.T) {
	for _, ep := range []string{"ftp://example.com", "://nope"} {
		if _, err := New(Config{Endpoint: ep, Logger: quietLogger()}); err == nil {
			t.Errorf("New(%q) should fail", ep)
		}
	}
}

func TestMapDirection(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 4}, {5, 0}, {-1, 0}, {99, 0},
	}
	for _, tt := range tests {
		if got := MapDirection(tt.in); got != tt.want {
			t.Errorf("MapDirection(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
