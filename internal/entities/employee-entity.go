package entities

import (
	"strings"

	"inventory-system/pkg/types"
)

// Employee is the directory record assignments reference. The directory
// itself is maintained elsewhere; the core only reads it.
type Employee struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"company_id"`
	BranchID   *string `json:"branch_id,omitempty"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Email      *string `json:"email,omitempty"`
	IsActive   bool    `json:"is_active"`

	types.BaseEntity
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
