package entity

import "time"

// Reminder is one scheduled delivery. A single remind command fans out into
// one Reminder per target user; each entry is delivered and dropped
// independently. Entries are immutable once created.
type Reminder struct {
	RecipientID string    `json:"recipientId"`
	AuthorName  string    `json:"authorDisplayName"`
	Message     string    `json:"message"`
	DueAt       time.Time `json:"dueInstant"`
}
