package game

import "github.com/google/uuid"

// Publisher provides methods for publishing messages to player channels.
type Publisher interface {
	PublishToPlayer(id uuid.UUID, data []byte) error
	PublishActionBar(id uuid.UUID, text string) error
}

// Subscriber provides the ability to subscribe to message subjects
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}
