package works

import (
	"time"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle state of a construction project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// TaxType tags how an amount relates to consumption tax. It is presentational
// only and never alters stored amounts.
type TaxType string

const (
	TaxTypeIncluded TaxType = "included"
	TaxTypeExcluded TaxType = "excluded"
)

// DefaultTaxRate is the consumption tax rate applied to new projects.
const DefaultTaxRate = 10

// Project represents a construction project (工事). General-expense projects
// are an overhead bucket: they carry costs but never bill a client.
type Project struct {
	shared.TenantAggregateRoot
	UserID           uuid.UUID     `gorm:"type:uuid;not null;index"`
	Code             string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_project_tenant_user_code,priority:3"`
	Period           int           `gorm:"not null;default:0"`
	IsGeneralExpense bool          `gorm:"not null;default:false"`
	Name             string        `gorm:"type:varchar(200);not null"`
	ClientName       string        `gorm:"type:varchar(200)"`
	EstimateNumber   string        `gorm:"type:varchar(100)"`
	ContractAmount   int64         `gorm:"not null;default:0"`
	TaxType          TaxType       `gorm:"type:varchar(20);not null;default:'included'"`
	TaxRate          int           `gorm:"not null;default:10"`
	Status           ProjectStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	StartDate        *time.Time
	EndDate          *time.Time
	InvoiceDate      *time.Time
	PaymentDate      *time.Time
	Notes            string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project owned by a staff member. The fiscal period
// is stamped at creation time and never recomputed afterwards.
func NewProject(tenantID, userID uuid.UUID, code, name string, period int, contractAmount int64) (*Project, error) {
	if err := validateProjectCode(code); err != nil {
		return nil, err
	}
	if err := validateProjectName(name); err != nil {
		return nil, err
	}
	if contractAmount < 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Contract amount cannot be negative")
	}

	project := &Project{
		TenantAggregateRoot: shared.NewTenantAggregateRootWithCreator(tenantID, userID),
		UserID:              userID,
		Code:                code,
		Period:              period,
		Name:                name,
		ContractAmount:      contractAmount,
		TaxType:             TaxTypeIncluded,
		TaxRate:             DefaultTaxRate,
		Status:              ProjectStatusActive,
	}

	project.AddDomainEvent(NewProjectCreatedEvent(project))

	return project, nil
}

// NewGeneralExpenseProject creates the overhead bucket project. It has no
// client and a zero contract amount.
func NewGeneralExpenseProject(tenantID, userID uuid.UUID, code, name string, period int) (*Project, error) {
	project, err := NewProject(tenantID, userID, code, name, period, 0)
	if err != nil {
		return nil, err
	}
	project.IsGeneralExpense = true
	return project, nil
}

// Update replaces the editable detail fields
func (p *Project) Update(name, clientName, estimateNumber string, contractAmount int64, taxType TaxType, taxRate int, startDate, endDate *time.Time, notes string) error {
	if err := validateProjectName(name); err != nil {
		return err
	}
	if contractAmount < 0 {
		return shared.NewDomainError("INVALID_AMOUNT", "Contract amount cannot be negative")
	}
	if taxType != TaxTypeIncluded && taxType != TaxTypeExcluded {
		return shared.NewDomainError("INVALID_INPUT", "Tax type must be included or excluded")
	}

	p.Name = name
	p.ClientName = clientName
	p.EstimateNumber = estimateNumber
	p.ContractAmount = contractAmount
	p.TaxType = taxType
	p.TaxRate = taxRate
	p.StartDate = startDate
	p.EndDate = endDate
	p.Notes = notes
	p.touch()

	p.AddDomainEvent(NewProjectUpdatedEvent(p))

	return nil
}

// SetInvoiceDate records or clears the invoice date
func (p *Project) SetInvoiceDate(d *time.Time) {
	p.InvoiceDate = d
	p.touch()
	p.AddDomainEvent(NewProjectBillingChangedEvent(p))
}

// SetPaymentDate records or clears the payment date
func (p *Project) SetPaymentDate(d *time.Time) {
	p.PaymentDate = d
	p.touch()
	p.AddDomainEvent(NewProjectBillingChangedEvent(p))
}

// SetNotes updates only the notes field
func (p *Project) SetNotes(notes string) {
	p.Notes = notes
	p.touch()
}

// Complete marks the project as finished
func (p *Project) Complete() error {
	if p.Status == ProjectStatusCompleted {
		return shared.NewDomainError("ALREADY_COMPLETED", "Project is already completed")
	}
	if p.Status == ProjectStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cancelled project cannot be completed")
	}

	from := p.Status
	p.Status = ProjectStatusCompleted
	p.touch()
	p.AddDomainEvent(NewProjectStatusChangedEvent(p, from, p.Status))

	return nil
}

// Cancel marks the project as cancelled
func (p *Project) Cancel() error {
	if p.Status == ProjectStatusCancelled {
		return shared.NewDomainError("ALREADY_CANCELLED", "Project is already cancelled")
	}

	from := p.Status
	p.Status = ProjectStatusCancelled
	p.touch()
	p.AddDomainEvent(NewProjectStatusChangedEvent(p, from, p.Status))

	return nil
}

// Reopen returns a completed or cancelled project to the active state
func (p *Project) Reopen() error {
	if p.Status == ProjectStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Project is already active")
	}

	from := p.Status
	p.Status = ProjectStatusActive
	p.touch()
	p.AddDomainEvent(NewProjectStatusChangedEvent(p, from, p.Status))

	return nil
}

// ChangeStatus applies a named status transition
func (p *Project) ChangeStatus(status ProjectStatus) error {
	switch status {
	case ProjectStatusActive:
		return p.Reopen()
	case ProjectStatusCompleted:
		return p.Complete()
	case ProjectStatusCancelled:
		return p.Cancel()
	default:
		return shared.NewDomainError("INVALID_INPUT", "Unknown project status")
	}
}

// IsBilled reports whether an invoice has been issued
func (p *Project) IsBilled() bool {
	return p.InvoiceDate != nil
}

// IsPaid reports whether payment has been recorded
func (p *Project) IsPaid() bool {
	return p.PaymentDate != nil
}

func (p *Project) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func validateProjectCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Project code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Project code cannot exceed 50 characters")
	}
	return nil
}

func validateProjectName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}
	return nil
}
