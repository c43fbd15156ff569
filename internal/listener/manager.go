package listener

import (
	"context"
	"io"
	"log/slog"
)

// SessionRunner plays one connection until it ends. user is the name the
// transport already authenticated, or empty when the player must be asked.
type SessionRunner interface {
	RunSession(ctx context.Context, conn io.ReadWriter, user string) error
}

type ConnectionManager struct {
	sessions SessionRunner
}

func NewConnectionManager(sessions SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		sessions: sessions,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter, user string) {
	if err := m.sessions.RunSession(ctx, conn, user); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
