package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// ValidStatus reports whether status is a known order status.
func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusCompleted
}

// JobNumberFloor is the lowest job number ever handed out. Numbering
// continues from wherever the shop's old paper books left off.
const JobNumberFloor = 4001

// NextJobNumber returns the job number following the highest one allocated
// so far. Job numbers never go below the floor and never decrease.
func NextJobNumber(maxAllocated int) int {
	if n := maxAllocated + 1; n > JobNumberFloor {
		return n
	}
	return JobNumberFloor
}

// Order is a print job order. JobNumber is the human-facing sequential
// identifier, distinct from the storage ID. Most specification fields are
// free text filled in by the front desk.
type Order struct {
	ID          string
	JobNumber   int
	JobType     string
	CompanyName string
	JobName     string
	JobQuantity string
	Size        string
	Rate        decimal.Decimal

	PapersAndColorsOfPapers       string
	QuantityAndSizeToRunOnMachine string
	ColorOfInk                    string
	Numbering                     string
	Punching                      string
	Perforation                   string
	Lamination                    string
	FixedCopy                     string
	TypeOfBinding                 string
	SpecialNote                   string

	Status    string // Pending, Completed
	CreatedAt time.Time
	UpdatedAt time.Time
}
