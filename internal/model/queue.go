package model

import "time"

type QueueEntry struct {
	Email    string    `json:"email"`
	Joined   time.Time `json:"joined"`
	Referrer string    `json:"referrer,omitempty"`
}
