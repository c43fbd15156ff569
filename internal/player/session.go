package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pixil98/go-titleinfo/internal"
	"github.com/pixil98/go-titleinfo/internal/commands"
	"github.com/pixil98/go-titleinfo/internal/display"
	"github.com/pixil98/go-titleinfo/internal/game"
	"github.com/pixil98/go-titleinfo/internal/messaging"
)

// actionBar keeps the latest action bar text. Text older than ttl is gone,
// the same way a client fades it out when refreshes stop.
type actionBar struct {
	mu   sync.Mutex
	text string
	at   time.Time
	ttl  time.Duration
}

func (b *actionBar) set(text string, now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.at = now
}

func (b *actionBar) current(now time.Time) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.text == "" || now.Sub(b.at) > b.ttl {
		return ""
	}
	return b.text
}

type session struct {
	conn     io.Writer
	prompter *internal.Prompter
	ps       *game.PlayerState
	world    *game.WorldState
	cmd      CommandRunner
	msgs     chan []byte
	bar      *actionBar
}

func newSession(conn io.Writer, p *internal.Prompter, ps *game.PlayerState, world *game.WorldState, cmd CommandRunner, msgs chan []byte, ttl time.Duration) *session {
	return &session{
		conn:     conn,
		prompter: p,
		ps:       ps,
		world:    world,
		cmd:      cmd,
		msgs:     msgs,
		bar:      &actionBar{ttl: ttl},
	}
}

func (s *session) subscribe() error {
	if err := s.ps.Subscribe(messaging.PlayerSubject(s.ps.Id)); err != nil {
		return err
	}
	return s.ps.SubscribeFunc(messaging.ActionBarSubject(s.ps.Id), func(data []byte) {
		s.bar.set(string(data), time.Now())
	})
}

func (s *session) play(ctx context.Context) error {
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(inputChan)
		for {
			line, err := s.prompter.ReadLine()
			if err != nil {
				inputErrChan <- err
				return
			}
			select {
			case inputChan <- line:
			case <-done:
				return
			}
		}
	}()

	if err := s.writeLine(fmt.Sprintf("Welcome, %s! Type 'help' for a list of commands.", s.ps.Name)); err != nil {
		return err
	}
	if err := s.prompt(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg := <-s.msgs:
			if err := s.writeLine("\n" + string(msg)); err != nil {
				return err
			}
			if err := s.prompt(); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				err := <-inputErrChan
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}

			line = strings.TrimSpace(line)
			if line != "" {
				quit, err := s.exec(ctx, line)
				if err != nil {
					return err
				}
				if quit {
					return s.writeLine("Goodbye!")
				}
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

// exec runs a command. User errors go back to the player; anything else
// ends the session.
func (s *session) exec(ctx context.Context, line string) (bool, error) {
	err := s.cmd.Exec(ctx, s.ps.Id, line)
	if err != nil {
		var userErr *commands.UserError
		if !errors.As(err, &userErr) {
			slog.ErrorContext(ctx, "command failed", "player", s.ps.Name, "command", line, "error", err)
			return false, fmt.Errorf("command execution failed: %w", err)
		}
		if err := s.writeLine(display.Wrap(userErr.Message)); err != nil {
			return false, err
		}
	}

	return s.world.QuitRequested(s.ps.Id), nil
}

// prompt shows the current action bar, if any, in front of the cursor.
func (s *session) prompt() error {
	p := "> "
	if bar := strings.TrimSpace(s.bar.current(time.Now())); bar != "" {
		p = fmt.Sprintf("[%s] > ", bar)
	}
	_, err := io.WriteString(s.conn, p)
	return err
}

func (s *session) writeLine(msg string) error {
	_, err := io.WriteString(s.conn, msg+"\n")
	return err
}
