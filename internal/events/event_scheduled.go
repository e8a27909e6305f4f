package events

import "time"

const EventScheduledTopic = "rikumates.event.scheduled.v1"

// EventScheduledMessage is emitted when a user schedules a recruitment event.
// The reminder consumer turns it into a preparation todo.
type EventScheduledMessage struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	CompanyID   string    `json:"company_id,omitempty"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}
