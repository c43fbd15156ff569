package version

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-titleinfo/internal/game"
)

type players map[uuid.UUID]*game.PlayerState

func (p players) ForEachPlayer(fn func(uuid.UUID, *game.PlayerState)) {
	for id, ps := range p {
		fn(id, ps)
	}
}

func (p players) GetPlayer(id uuid.UUID) *game.PlayerState { return p[id] }

type sent struct {
	mu   sync.Mutex
	msgs map[uuid.UUID][]string
}

func (s *sent) PublishToPlayer(id uuid.UUID, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs[id] = append(s.msgs[id], string(data))
	return nil
}

func (s *sent) PublishActionBar(uuid.UUID, string) error { return nil }

func versionServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChecker_Check(t *testing.T) {
	tests := map[string]struct {
		status  int
		body    string
		current string
		expNew  bool
		expErr  string
	}{
		"newer": {
			status:  http.StatusOK,
			body:    "3.1.0\n",
			current: "3.0.2",
			expNew:  true,
		},
		"same": {
			status:  http.StatusOK,
			body:    "3.0.2",
			current: "3.0.2",
		},
		"older remote": {
			status:  http.StatusOK,
			body:    "2.9",
			current: "3.0.2",
		},
		"first word only": {
			status:  http.StatusOK,
			body:    "  v4.0.0 released today",
			current: "3.0.2",
			expNew:  true,
		},
		"bad status": {
			status:  http.StatusServiceUnavailable,
			current: "3.0.2",
			expErr:  "unexpected status",
		},
		"empty body": {
			status:  http.StatusOK,
			current: "3.0.2",
			expErr:  "empty version response",
		},
		"garbage": {
			status:  http.StatusOK,
			body:    "not-a-version",
			current: "3.0.2",
			expErr:  "parsing latest version",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			srv := versionServer(t, tc.status, tc.body)
			c, err := NewChecker(srv.URL, tc.current, players{}, &sent{msgs: map[uuid.UUID][]string{}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			newer, err := c.Check(context.Background())
			if tc.expErr != "" {
				testutil.AssertErrorContains(t, err, tc.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "newer", newer, tc.expNew)

			_, ok := c.Latest()
			testutil.AssertEqual(t, "latest", ok, tc.expNew)
		})
	}
}

func TestNewChecker_BadCurrentVersion(t *testing.T) {
	_, err := NewChecker("http://localhost", "banana", players{}, nil)
	testutil.AssertErrorContains(t, err, "parsing current version")
}

func TestChecker_NotifiesAdmins(t *testing.T) {
	admin := game.PlayerId("Op")
	regular := game.PlayerId("Steve")
	online := players{
		admin:   {Id: admin, Name: "Op", Admin: true},
		regular: {Id: regular, Name: "Steve"},
	}
	pub := &sent{msgs: map[uuid.UUID][]string{}}

	srv := versionServer(t, http.StatusOK, "3.1.0")
	c, err := NewChecker(srv.URL, "3.0.2", online, pub, WithDownloadPage("https://example.org/titleinfo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.run(context.Background())

	testutil.AssertEqual(t, "admin notices", len(pub.msgs[admin]), 1)
	testutil.AssertEqual(t, "regular notices", len(pub.msgs[regular]), 0)
	testutil.AssertEqual(t, "message", pub.msgs[admin][0],
		"A new version (3.1.0) is available! You're running 3.0.2.\nUpdate at: https://example.org/titleinfo\n")

	c.NotifyAdmin(context.Background(), admin)
	c.NotifyAdmin(context.Background(), regular)
	testutil.AssertEqual(t, "admin on login", len(pub.msgs[admin]), 2)
	testutil.AssertEqual(t, "regular on login", len(pub.msgs[regular]), 0)
}

func TestChecker_NoNoticeWhenCurrent(t *testing.T) {
	admin := game.PlayerId("Op")
	pub := &sent{msgs: map[uuid.UUID][]string{}}

	srv := versionServer(t, http.StatusOK, "3.0.2")
	c, err := NewChecker(srv.URL, "3.0.2", players{admin: {Id: admin, Admin: true}}, pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.run(context.Background())
	c.NotifyAdmin(context.Background(), admin)
	testutil.AssertEqual(t, "notices", len(pub.msgs[admin]), 0)
}

func TestChecker_StartStopsOnCancel(t *testing.T) {
	var hits int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		_, _ = w.Write([]byte("1.0.0"))
	}))
	t.Cleanup(srv.Close)

	c, err := NewChecker(srv.URL, "1.0.0", players{}, &sent{msgs: map[uuid.UUID][]string{}},
		WithInterval(10*time.Millisecond), WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	if err := c.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	testutil.AssertEqual(t, "repeated", hits > 1, true)
}
