package domain

import "time"

// Draft is a named, locally saved plan snapshot.
type Draft struct {
	ID   string
	Name string
	// ContextLabel is the hero the plan was saved under.
	ContextLabel string
	Payload      []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
