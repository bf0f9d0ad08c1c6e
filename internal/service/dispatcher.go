package service

import (
	"sync"

	"k9-duty-backend/internal/database/models"
	"k9-duty-backend/internal/logger"

	"github.com/google/uuid"
)

// Event is an outbound notification event published by the workflow services.
// Delivery is best-effort and single-attempt: a failed or dropped event never
// fails the workflow transition that produced it.
type Event struct {
	RecipientID uuid.UUID
	Type        models.NotificationType
	Title       string
	Message     string
	EntityType  string
	EntityID    *uuid.UUID
}

// Notifier is the outbound side of notification dispatch as seen by the
// workflow services
type Notifier interface {
	Publish(event Event)
}

// Dispatcher consumes published events on its own goroutine and persists them
// as notifications. It has an explicit Start/Stop lifecycle; Stop drains the
// queue before returning.
type Dispatcher struct {
	notifications *NotificationService
	log           *logger.Logger
	events        chan Event

	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
	stopped bool
}

// NewDispatcher creates a dispatcher with the given queue capacity
func NewDispatcher(notifications *NotificationService, queueSize int, log *logger.Logger) *Dispatcher {
	if queueSize < 1 {
		queueSize = 256
	}
	return &Dispatcher{
		notifications: notifications,
		log:           log,
		events:        make(chan Event, queueSize),
	}
}

// Start launches the delivery worker
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for event := range d.events {
			d.deliver(event)
		}
	}()
	d.log.Info("notification dispatcher started")
}

// Stop closes the queue and waits for remaining events to be delivered
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	started := d.started
	close(d.events)
	d.mu.Unlock()

	if started {
		d.wg.Wait()
	} else {
		// Never started: drain synchronously so nothing published is lost
		for event := range d.events {
			d.deliver(event)
		}
	}
	d.log.Info("notification dispatcher stopped")
}

// Publish enqueues an event for delivery. It never blocks: when the queue is
// full or the dispatcher is stopped the event is dropped with a log line.
func (d *Dispatcher) Publish(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.log.WithField("type", event.Type).Warn("dispatcher stopped, dropping notification event")
		return
	}
	select {
	case d.events <- event:
	default:
		d.log.WithField("type", event.Type).Warn("notification queue full, dropping event")
	}
}

func (d *Dispatcher) deliver(event Event) {
	_, err := d.notifications.Notify(&NotifyRequest{
		RecipientID: event.RecipientID,
		Type:        event.Type,
		Title:       event.Title,
		Message:     event.Message,
		EntityType:  event.EntityType,
		EntityID:    event.EntityID,
	})
	if err != nil {
		d.log.WithFields(map[string]interface{}{
			"recipient": event.RecipientID,
			"type":      event.Type,
		}).WithError(err).Error("failed to deliver notification")
	}
}
