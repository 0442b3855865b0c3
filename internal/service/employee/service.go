package employee

import (
	"context"

	"github.com/peoplecore/backoffice-go/internal/domain/employee"
	"github.com/peoplecore/backoffice-go/internal/pkg/database"
	"github.com/peoplecore/backoffice-go/internal/repository/postgresql"
)

type EmployeeService struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeService) List(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, department)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Create inserts a new directory entry. The uniqueness check and the insert
// run in one transaction so a concurrent create of the same code cannot slip
// between them.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		exists, err := s.employeeRepo.ExistsByCode(txCtx, req.EmployeeCode)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmployeeCodeExists
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			Department:   req.Department,
			Position:     req.Position,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, id, req)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
