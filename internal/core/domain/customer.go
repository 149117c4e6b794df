package domain

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")
var ErrCustomerExists = errors.New("customer already exists")

// Customer is one row of the managed record table. The id is caller-supplied
// and immutable after creation; only name and job may change.
type Customer struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Job  string `json:"job" db:"job"`
}
