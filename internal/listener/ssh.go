package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// SshListener serves player sessions over ssh. Clients are not
// authenticated; the ssh user name is offered to the login as the player
// name.
type SshListener struct {
	port    uint16
	cm      *ConnectionManager
	hostKey ssh.Signer
}

func NewSshListener(port uint16, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		port:    port,
		cm:      cm,
		hostKey: hostKey,
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	config := &ssh.ServerConfig{NoClientAuth: true}
	config.AddHostKey(l.hostKey)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}
	slog.InfoContext(ctx, "listening for ssh", "port", l.port)

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	return l.serve(ctx, ln, config)
}

// serve accepts until ctx ends, then ends every open session and waits for
// them to save their players.
func (l *SshListener) serve(ctx context.Context, ln net.Listener, config *ssh.ServerConfig) error {
	sessCtx, endSessions := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup

	defer func() {
		endSessions()
		wg.Wait()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.handleConnection(sessCtx, conn, config)
		}()
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer func() { _ = conn.Close() }()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.ErrorContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer func() { _ = sshConn.Close() }()

	user := sshConn.User()
	slog.InfoContext(ctx, "ssh connection established", "remote", conn.RemoteAddr(), "user", user)

	go func() {
		<-ctx.Done()
		_ = sshConn.Close()
	}()
	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			_ = newChan.Reject(ssh.UnknownChannelType, "only session channels are served")
			continue
		}
		l.runChannel(ctx, newChan, user)
	}
}

// runChannel plays one session channel once the client has asked for a
// shell. Sessions on one connection run one after another.
func (l *SshListener) runChannel(ctx context.Context, newChan ssh.NewChannel, user string) {
	ch, requests, err := newChan.Accept()
	if err != nil {
		slog.ErrorContext(ctx, "accepting ssh channel", "user", user, "error", err)
		return
	}
	defer func() { _ = ch.Close() }()

	select {
	case <-awaitShell(requests):
	case <-ctx.Done():
		return
	}

	l.cm.AcceptConnection(ctx, newLineEndings(ch), user)
}

// awaitShell answers channel requests and closes the returned channel on the
// first shell request. Pty requests are refused, leaving line editing and
// echo to the client.
func awaitShell(requests <-chan *ssh.Request) <-chan struct{} {
	ready := make(chan struct{})
	var once sync.Once

	go func() {
		for req := range requests {
			ok := req.Type == "shell"
			_ = req.Reply(ok, nil)
			if ok {
				once.Do(func() { close(ready) })
			}
		}
	}()

	return ready
}
