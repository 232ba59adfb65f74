package employee

import (
	"context"
	"strings"
	"sync"

	"go-ems/internal/bootstrap"
	"go-ems/internal/domain"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, search string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	audit bootstrap.AuditLogger
	// mu makes the employee code uniqueness check and the write that
	// follows it one step.
	mu     sync.Mutex
	logger *zap.Logger
}

func NewService(repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		audit:  audit,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("employee_code", req.EmployeeCode),
		zap.String("department", req.Department),
	)

	empl := toDomain(uuid.NewString(), req)
	if err := validate(empl); err != nil {
		return EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.ListEmployees(ctx)
	if err != nil {
		log.Error("create employee list failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if codeTaken(existing, empl.EmployeeCode, "") {
		log.Warn("create employee duplicate code", zap.String("employee_code", empl.EmployeeCode))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
	}

	if err := s.repo.AddEmployee(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success",
		zap.String("employee_id", empl.ID),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return mapToResponse(empl), nil
}

// GetAll returns employees in insertion order, optionally narrowed by a
// free-text search.
func (s *service) GetAll(ctx context.Context, search string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("search", search))

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	term := strings.TrimSpace(search)
	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if e.Matches(term) {
			resp = append(resp, mapToResponse(e))
		}
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.find(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(empl), nil
}

// Update replaces the whole record. Attendance amounts already stored keep
// the rate that applied when they were marked.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("employee_id", id))

	empl := toDomain(id, CreateEmployeeRequest(req))
	if err := validate(empl); err != nil {
		return EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.ListEmployees(ctx)
	if err != nil {
		log.Error("update employee list failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if _, ok := findByID(existing, id); !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if codeTaken(existing, empl.EmployeeCode, id) {
		log.Warn("update employee duplicate code", zap.String("employee_code", empl.EmployeeCode))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
	}

	if err := s.repo.UpdateEmployee(ctx, empl); err != nil {
		log.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(empl), nil
}

// Delete removes the employee and every attendance record of theirs.
func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.String("employee_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	empl, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	records, err := s.repo.ListAttendance(ctx)
	if err != nil {
		log.Error("delete employee list attendance failed", zap.Error(err))
		return err
	}
	removed := 0
	for _, r := range records {
		if r.EmployeeID == id {
			removed++
		}
	}

	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		log.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "EMPLOYEE_DELETED",
			Message: "Employee and attendance history deleted",
			Meta: map[string]any{
				"employee_id":        id,
				"employee_code":      empl.EmployeeCode,
				"attendance_removed": removed,
			},
		})
	}

	log.Info("delete employee success", zap.String("employee_id", id), zap.Int("attendance_removed", removed))
	return nil
}

func (s *service) find(ctx context.Context, id string) (domain.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return domain.Employee{}, err
	}
	empl, ok := findByID(employees, id)
	if !ok {
		return domain.Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return empl, nil
}

func findByID(employees []domain.Employee, id string) (domain.Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// codeTaken reports whether another employee than exceptID already uses code.
func codeTaken(employees []domain.Employee, code, exceptID string) bool {
	for _, e := range employees {
		if e.ID != exceptID && strings.EqualFold(e.EmployeeCode, code) {
			return true
		}
	}
	return false
}

func validate(e domain.Employee) error {
	if e.EmployeeCode == "" {
		return apperror.RequiredField("employee_code")
	}
	if e.Name == "" {
		return apperror.RequiredField("name")
	}
	if !e.DailySalary.IsPositive() {
		return employeeerrors.ErrInvalidDailySalary
	}
	if !domain.IsValidDepartment(e.Department) {
		return employeeerrors.ErrInvalidDepartment
	}
	if _, err := domain.ParseDate(e.JoiningDate); err != nil {
		return employeeerrors.ErrInvalidJoiningDate
	}
	return nil
}

func toDomain(id string, req CreateEmployeeRequest) domain.Employee {
	return domain.Employee{
		ID:            id,
		EmployeeCode:  strings.TrimSpace(req.EmployeeCode),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		NationalID:    strings.TrimSpace(req.NationalID),
		AccountName:   strings.TrimSpace(req.AccountName),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		JoiningDate:   strings.TrimSpace(req.JoiningDate),
		Position:      strings.TrimSpace(req.Position),
		Department:    req.Department,
		DailySalary:   req.DailySalary,
	}
}

func mapToResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmployeeCode:  e.EmployeeCode,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		NationalID:    e.NationalID,
		AccountName:   e.AccountName,
		AccountNumber: e.AccountNumber,
		JoiningDate:   e.JoiningDate,
		Position:      e.Position,
		Department:    e.Department,
		DailySalary:   e.DailySalary,
	}
}
