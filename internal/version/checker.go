package version

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/game"
)

const DefaultTimeout = 10 * time.Second

// Players is the view of connected players the checker notifies.
type Players interface {
	ForEachPlayer(func(uuid.UUID, *game.PlayerState))
	GetPlayer(uuid.UUID) *game.PlayerState
}

// Checker fetches the latest published version and tells admins when the
// running one is behind.
type Checker struct {
	url      string
	current  *semver.Version
	client   *http.Client
	players  Players
	pub      game.Publisher
	interval time.Duration
	page     string

	mu     sync.RWMutex
	latest *semver.Version
}

type CheckerOpt func(*Checker)

// WithTimeout bounds each fetch.
func WithTimeout(d time.Duration) CheckerOpt {
	return func(c *Checker) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithInterval repeats the check. Zero checks once at start.
func WithInterval(d time.Duration) CheckerOpt {
	return func(c *Checker) {
		c.interval = d
	}
}

// WithHTTPClient replaces the client used for fetches.
func WithHTTPClient(client *http.Client) CheckerOpt {
	return func(c *Checker) {
		c.client = client
	}
}

// WithDownloadPage adds where to get the update to admin notices.
func WithDownloadPage(page string) CheckerOpt {
	return func(c *Checker) {
		c.page = page
	}
}

func NewChecker(url string, current string, players Players, pub game.Publisher, opts ...CheckerOpt) (*Checker, error) {
	v, err := semver.NewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("parsing current version %q: %w", current, err)
	}

	c := &Checker{
		url:     url,
		current: v,
		client:  &http.Client{Timeout: DefaultTimeout},
		players: players,
		pub:     pub,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Checker) Start(ctx context.Context) error {
	c.run(ctx)

	if c.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.run(ctx)
		}
	}
}

func (c *Checker) run(ctx context.Context) {
	newer, err := c.Check(ctx)
	if err != nil {
		slog.WarnContext(ctx, "checking for updates", "error", err)
		return
	}
	if !newer {
		slog.InfoContext(ctx, "running the latest version", "version", c.current.Original())
		return
	}

	latest, _ := c.Latest()
	slog.WarnContext(ctx, "a new version is available", "latest", latest, "running", c.current.Original())
	c.players.ForEachPlayer(func(id uuid.UUID, ps *game.PlayerState) {
		if ps.Admin {
			c.notify(ctx, id)
		}
	})
}

// Check fetches the latest version and reports whether it is newer than the
// running one.
func (c *Checker) Check(ctx context.Context) (bool, error) {
	latest, err := c.fetch(ctx)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.latest = latest
	c.mu.Unlock()

	return latest.GreaterThan(c.current), nil
}

// Latest returns the last fetched version when it is newer than the running one.
func (c *Checker) Latest() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.latest == nil || !c.latest.GreaterThan(c.current) {
		return "", false
	}
	return c.latest.Original(), true
}

// NotifyAdmin tells a newly connected admin about a pending update.
func (c *Checker) NotifyAdmin(ctx context.Context, id uuid.UUID) {
	ps := c.players.GetPlayer(id)
	if ps == nil || !ps.Admin {
		return
	}
	c.notify(ctx, id)
}

func (c *Checker) notify(ctx context.Context, id uuid.UUID) {
	latest, ok := c.Latest()
	if !ok {
		return
	}

	msg := fmt.Sprintf("A new version (%s) is available! You're running %s.\n", latest, c.current.Original())
	if c.page != "" {
		msg += fmt.Sprintf("Update at: %s\n", c.page)
	}
	if err := c.pub.PublishToPlayer(id, []byte(msg)); err != nil {
		slog.WarnContext(ctx, "notifying admin of update", "player", id, "error", err)
	}
}

func (c *Checker) fetch(ctx context.Context) (*semver.Version, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", c.url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", c.url, resp.Status)
	}

	// The endpoint answers with the bare version as its first word.
	scanner := bufio.NewScanner(io.LimitReader(resp.Body, 1024))
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading response: %w", err)
		}
		return nil, fmt.Errorf("empty version response")
	}

	text := strings.TrimSpace(scanner.Text())
	v, err := semver.NewVersion(text)
	if err != nil {
		return nil, fmt.Errorf("parsing latest version %q: %w", text, err)
	}
	return v, nil
}
