package models

import "time"

// CalendarEvent is a dated entry on the calendar. Tussle deadlines are shown
// next to these events but are never stored as events.
type CalendarEvent struct {
	ID    string
	Date  string
	Title string

	// Type is a free-form category such as "meeting" or "delivery".
	Type string

	CreatedAt time.Time
}
