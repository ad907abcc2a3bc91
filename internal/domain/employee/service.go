package employee

import (
	"context"
)

type EmployeeService interface {
	List(ctx context.Context) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListInactive(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req SaveEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req SaveEmployeeRequest) (Employee, error)
	Profile(ctx context.Context) (Employee, error)
}
