package report

import (
	"fmt"
	"time"

	"github.com/gemba/backend/internal/domain/shared"
)

// UnbilledRule selects which projects count as "not yet invoiced".
// The rule is a single company-wide setting.
type UnbilledRule string

const (
	// UnbilledRuleActive counts active projects without an invoice date.
	UnbilledRuleActive UnbilledRule = "active"
	// UnbilledRuleCompleted counts completed projects without an invoice date.
	UnbilledRuleCompleted UnbilledRule = "completed"
	// UnbilledRuleOverdue counts projects past their end date without an
	// invoice date.
	UnbilledRuleOverdue UnbilledRule = "overdue"
)

// ParseUnbilledRule validates a stored rule value.
func ParseUnbilledRule(s string) (UnbilledRule, error) {
	switch UnbilledRule(s) {
	case UnbilledRuleActive, UnbilledRuleCompleted, UnbilledRuleOverdue:
		return UnbilledRule(s), nil
	default:
		return "", shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("unknown unbilled rule %q", s))
	}
}

// Classification is the result of an unbilled or unpaid scan.
type Classification struct {
	Count    int
	Total    int64
	Projects []ProjectRecord
}

// ClassifyUnbilled returns the projects matching the configured unbilled rule.
// General-expense projects never bill a client and are always exempt.
func ClassifyUnbilled(projects []ProjectRecord, rule UnbilledRule, today time.Time) (Classification, error) {
	if _, err := ParseUnbilledRule(string(rule)); err != nil {
		return Classification{}, err
	}

	result := Classification{Projects: make([]ProjectRecord, 0)}
	for _, p := range projects {
		if p.IsGeneralExpense || p.InvoiceDate != nil {
			continue
		}
		var matched bool
		switch rule {
		case UnbilledRuleActive:
			matched = p.Status == ProjectStatusActive
		case UnbilledRuleCompleted:
			matched = p.Status == ProjectStatusCompleted
		case UnbilledRuleOverdue:
			matched = p.EndDate != nil && p.EndDate.Before(today)
		}
		if matched {
			result.Count++
			result.Total += p.ContractAmount
			result.Projects = append(result.Projects, p)
		}
	}
	return result, nil
}

// ClassifyUnpaid returns the projects that have been invoiced but carry no
// payment date. Unlike the unbilled rule this is fixed: a project never
// invoiced is not unpaid, it is unbilled.
func ClassifyUnpaid(projects []ProjectRecord) Classification {
	result := Classification{Projects: make([]ProjectRecord, 0)}
	for _, p := range projects {
		if p.IsGeneralExpense {
			continue
		}
		if p.InvoiceDate != nil && p.PaymentDate == nil {
			result.Count++
			result.Total += p.ContractAmount
			result.Projects = append(result.Projects, p)
		}
	}
	return result
}
