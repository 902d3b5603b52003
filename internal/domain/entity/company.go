package entity

import "time"

// Company is a client company referenced by orders through its name.
// Companies are created and renamed but never deleted.
type Company struct {
	ID          string
	CompanyName string
	CreatedAt   time.Time
}
