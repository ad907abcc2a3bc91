package employee

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/domain/employee"
	"github.com/hr-core/hr-core-go/internal/store"
)

type EmployeeServiceImpl struct {
	store *store.Store
}

func NewEmployeeService(st *store.Store) employee.EmployeeService {
	return &EmployeeServiceImpl{store: st}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.store.Employees(), nil
}

// ListActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.store.ActiveEmployees(), nil
}

// ListInactive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListInactive(ctx context.Context) ([]employee.Employee, error) {
	return s.store.InactiveEmployees(), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.store.EmployeeByID(id)
}

// Create implements employee.EmployeeService. The store assigns the ID.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.store.AddEmployee(req.ToEntity(""))
}

// Update implements employee.EmployeeService. The whole record is replaced.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.SaveEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	entity := req.ToEntity(id)
	if err := s.store.UpdateEmployee(entity); err != nil {
		return employee.Employee{}, err
	}
	return entity, nil
}

// Profile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Profile(ctx context.Context) (employee.Employee, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	return s.store.EmployeeByID(employeeID)
}

// employeeIDFromContext extracts employee_id from JWT claims
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrEmployeeIDClaimMissing
	}
	return employeeID, nil
}
