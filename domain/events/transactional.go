package events

import (
	log "github.com/sirupsen/logrus"
)

// Publisher is the write side of the event bus.
type Publisher interface {
	Publish(event Event) error
}

// TransactionalPublisher holds events until Flush so that nothing is
// observable before the database transaction that produced it commits.
// A rolled-back transaction discards its pending events.
type TransactionalPublisher struct {
	realPublisher Publisher
	pending       []Event
}

// NewTransactionalPublisher creates a publisher that buffers until Flush
func NewTransactionalPublisher(realPublisher Publisher) *TransactionalPublisher {
	return &TransactionalPublisher{
		realPublisher: realPublisher,
		pending:       make([]Event, 0),
	}
}

// Publish stores an event in the pending queue without dispatching it
func (p *TransactionalPublisher) Publish(event Event) error {
	p.pending = append(p.pending, event)
	return nil
}

// Flush dispatches all pending events. Call after a successful commit.
// Publish failures are logged and do not fail the flush; the database
// transaction has already committed.
func (p *TransactionalPublisher) Flush() {
	for _, event := range p.pending {
		if err := p.realPublisher.Publish(event); err != nil {
			log.WithFields(log.Fields{
				"eventType": event.Type(),
				"error":     err,
			}).Error("Failed to publish event during flush")
		}
	}
	p.pending = p.pending[:0]
}

// Discard drops all pending events. Call on rollback.
func (p *TransactionalPublisher) Discard() {
	p.pending = p.pending[:0]
}
