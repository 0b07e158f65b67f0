package model

// Dashboard aggregates everything the member dashboard shows for one
// customer. QueuePosition is nil when the customer is not in the queue.
type Dashboard struct {
	Customer       Customer   `json:"customer"`
	Package        Package    `json:"package"`
	Guides         []Guide    `json:"guides"`
	Commission     Commission `json:"commission"`
	QueuePosition  *int       `json:"queue_position"`
	WelcomeMessage string     `json:"welcome_message"`
}

// AdminOverview is the full state snapshot shown on the admin dashboard.
type AdminOverview struct {
	Customers   map[string]Customer   `json:"customers"`
	Packages    map[string]Package    `json:"packages"`
	Commissions map[string]Commission `json:"commissions"`
	Queue       []QueueEntry          `json:"queue"`
}
