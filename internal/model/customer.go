package model

import "time"

type Customer struct {
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	PackageLevel int       `json:"package_level"`
	Registered   time.Time `json:"registered"`
	Referrer     *string   `json:"referrer"`
}

// HasReferrer reports whether the customer was referred by someone.
func (c *Customer) HasReferrer() bool {
	return c.Referrer != nil && *c.Referrer != ""
}
