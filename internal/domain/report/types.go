package report

import (
	"time"

	"github.com/google/uuid"
)

// ProjectRecord is the read-side view of a construction project used by the
// aggregation engine. Callers map persistence entities into this shape; the
// engine itself performs no I/O.
type ProjectRecord struct {
	ID               uuid.UUID
	Code             string
	Period           int
	Name             string
	ClientName       string
	EstimateNumber   string
	ContractAmount   int64
	Status           string
	IsGeneralExpense bool
	StartDate        *time.Time
	EndDate          *time.Time
	InvoiceDate      *time.Time
	PaymentDate      *time.Time
	UserID           uuid.UUID
	StaffCode        string
}

// CostRecord is the read-side view of a recorded cost.
type CostRecord struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Date        time.Time
	Vendor      string
	Description string
	Category    string
	Amount      int64
}

// Project status values as they appear on records fed to the engine.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)
