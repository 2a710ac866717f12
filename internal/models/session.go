package models

import "time"

// Session is server-side login state keyed by a client-held session id.
type Session struct {
	ID            string    `json:"-"`
	User          string    `json:"user"`
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"-"`
}
