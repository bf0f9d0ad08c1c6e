package service_test

import (
	"time"

	"k9-duty-backend/internal/service"
)

// fixedClock pins Now for deterministic deadline and transition tests
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Location() *time.Location {
	return c.now.Location()
}

// recordingNotifier captures published events for assertions
type recordingNotifier struct {
	events []service.Event
}

func (n *recordingNotifier) Publish(event service.Event) {
	n.events = append(n.events, event)
}
