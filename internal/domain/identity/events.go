package identity

import (
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeCompany = "Company"
	AggregateTypeUser    = "User"
)

// Event type constants
const (
	EventTypeCompanyCreated = "CompanyCreated"
	EventTypeUserCreated    = "UserCreated"
	EventTypeUserLoggedIn   = "UserLoggedIn"
)

// CompanyCreatedEvent is published when a company is provisioned
type CompanyCreatedEvent struct {
	shared.BaseDomainEvent
	CompanyID uuid.UUID `json:"company_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
}

// NewCompanyCreatedEvent creates a new CompanyCreatedEvent
func NewCompanyCreatedEvent(company *Company) *CompanyCreatedEvent {
	return &CompanyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyCreated, AggregateTypeCompany, company.ID, company.ID),
		CompanyID:       company.ID,
		Code:            company.Code,
		Name:            company.Name,
	}
}

// UserCreatedEvent is published when a staff member is registered
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     UserRole  `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID, user.TenantID),
		UserID:          user.ID,
		Username:        user.Username,
		Role:            user.Role,
	}
}
