package model

import "time"

type Commission struct {
	TotalEarned float64   `json:"total_earned"`
	Payments    []Payment `json:"payments"`
}

type Payment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}
