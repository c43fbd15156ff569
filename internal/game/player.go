package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-titleinfo/internal/display"
)

// playerNamespace seeds the name based player ids, so a name maps to the
// same id across restarts.
var playerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("titleinfo:player"))

// PlayerId returns the stable id for a player name. Names are case-insensitive.
func PlayerId(name string) uuid.UUID {
	return uuid.NewSHA1(playerNamespace, []byte(strings.ToLower(name)))
}

// PlayerState holds all mutable state for a connected player.
type PlayerState struct {
	subscriber Subscriber
	msgs       chan []byte

	Id    uuid.UUID
	Name  string
	Admin bool

	Position display.Point
	Yaw      float64

	subs map[string]func()

	Quit         bool
	LastActivity time.Time
}

// Subscribe adds a new subscription that forwards messages to the player's
// message channel.
func (p *PlayerState) Subscribe(subject string) error {
	if p.subscriber == nil {
		return fmt.Errorf("subscriber is nil")
	}

	unsub, err := p.subscriber.Subscribe(subject, func(data []byte) {
		p.msgs <- data
	})

	// Drop any subscription we already hold for the subject.
	if old, ok := p.subs[subject]; ok {
		old()
		delete(p.subs, subject)
	}

	if err != nil {
		return fmt.Errorf("subscribing to channel '%s': %w", subject, err)
	}
	p.subs[subject] = unsub
	return nil
}

// SubscribeFunc adds a subscription with a custom handler.
func (p *PlayerState) SubscribeFunc(subject string, handler func([]byte)) error {
	if p.subscriber == nil {
		return fmt.Errorf("subscriber is nil")
	}

	unsub, err := p.subscriber.Subscribe(subject, handler)
	if old, ok := p.subs[subject]; ok {
		old()
		delete(p.subs, subject)
	}
	if err != nil {
		return fmt.Errorf("subscribing to channel '%s': %w", subject, err)
	}
	p.subs[subject] = unsub
	return nil
}

// Unsubscribe removes a subscription by name
func (p *PlayerState) Unsubscribe(subject string) {
	if unsub, ok := p.subs[subject]; ok {
		unsub()
		delete(p.subs, subject)
	}
}

// UnsubscribeAll removes all subscriptions
func (p *PlayerState) UnsubscribeAll() {
	for name, unsub := range p.subs {
		unsub()
		delete(p.subs, name)
	}
}
