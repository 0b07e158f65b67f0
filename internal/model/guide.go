package model

type Guide struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	Locked      bool   `json:"locked"`
}
