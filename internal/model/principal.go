package model

// Principal identifies an authenticated caller. Customer principals carry
// the customer's email as Subject; the administrative principal carries the
// configured admin username instead and never exists in the customer
// directory.
type Principal struct {
	Subject string
	Admin   bool
}
