package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/peopledesk/hr-api/internal/core/domain"
	"github.com/peopledesk/hr-api/internal/core/ports"
)

// EmployeeService implements the employee record use cases. Email uniqueness
// is checked here before any write; the unique Mongo index is the backstop
// for two concurrent creates racing past the check.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	email := strings.ToLower(input.Email)

	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      email,
		Phone:      input.Phone,
		HireDate:   input.HireDate,
		Salary:     input.Salary,
		Department: input.Department,
		Image:      input.Image,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("email", created.Email).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id string, patch ports.EmployeePatch) (*domain.Employee, error) {
	if patch.Email != nil {
		email := strings.ToLower(*patch.Email)
		patch.Email = &email
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", updated.ID).Msg("employee updated")
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

// ensureEmailFree fails with ErrEmailExists when another record (excluding
// exceptID) already holds the email.
func (s *EmployeeService) ensureEmailFree(ctx context.Context, email, exceptID string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != exceptID {
		return domain.ErrEmailExists
	}
	return nil
}
