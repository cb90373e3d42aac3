package ports

import (
	"context"
	"time"

	"github.com/peopledesk/hr-api/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to create a new employee.
// Image is the relative avatar path produced by the upload step, or empty.
type CreateEmployeeInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	HireDate   time.Time
	Salary     int
	Department string
	Image      string
}

// EmployeeService defines the employee record use cases.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, patch EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
