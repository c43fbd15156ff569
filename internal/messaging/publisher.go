package messaging

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerSubject carries chat and command output for one player.
func PlayerSubject(id uuid.UUID) string {
	return fmt.Sprintf("player-%s", id)
}

// ActionBarSubject carries ephemeral action bar text for one player.
func ActionBarSubject(id uuid.UUID) string {
	return fmt.Sprintf("actionbar-%s", id)
}

// Broker is the part of NatsServer the publisher needs.
type Broker interface {
	Publish(subject string, data []byte) error
}

// NatsPublisher publishes messages to individual player NATS channels.
type NatsPublisher struct {
	broker Broker
}

// NewNatsPublisher wraps a broker for per-player message delivery.
func NewNatsPublisher(broker Broker) *NatsPublisher {
	return &NatsPublisher{broker: broker}
}

func (p *NatsPublisher) PublishToPlayer(id uuid.UUID, data []byte) error {
	if err := p.broker.Publish(PlayerSubject(id), data); err != nil {
		return fmt.Errorf("publishing to player %s: %w", id, err)
	}
	return nil
}

func (p *NatsPublisher) PublishActionBar(id uuid.UUID, text string) error {
	if err := p.broker.Publish(ActionBarSubject(id), []byte(text)); err != nil {
		return fmt.Errorf("publishing action bar to %s: %w", id, err)
	}
	return nil
}
