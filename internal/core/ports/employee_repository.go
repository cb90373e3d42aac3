package ports

import (
	"context"
	"time"

	"github.com/peopledesk/hr-api/internal/core/domain"
)

// EmployeePatch carries a partial update. Nil fields are left untouched so
// the stored document keeps its existing values for keys the request omitted.
type EmployeePatch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	HireDate   *time.Time
	Salary     *int
	Department *string
	Image      *string
}

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// List returns every employee in storage order.
	List(ctx context.Context) ([]*domain.Employee, error)
	// Update applies patch to the record and returns the updated document.
	Update(ctx context.Context, id string, patch EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
