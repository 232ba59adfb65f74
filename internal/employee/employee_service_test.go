package employee_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-ems/internal/bootstrap"
	"go-ems/internal/domain"
	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"
	storeMock "go-ems/internal/store/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

type serviceDeps struct {
	store   *storeMock.MockStore
	audit   *recordingAudit
	service employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	st := storeMock.NewMockStore(ctrl)
	audit := &recordingAudit{}
	return &serviceDeps{
		store:   st,
		audit:   audit,
		service: employee.NewService(st, audit),
	}
}

func validRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode:  " EMP-002 ",
		Name:          "Arjun Rao",
		Email:         "arjun@example.com",
		Phone:         "+91 98765 43210",
		Address:       "12 MG Road, Bengaluru",
		NationalID:    "2345 6789 0123",
		AccountName:   "Arjun Rao",
		AccountNumber: "001234567890",
		JoiningDate:   "2023-06-01",
		Position:      "Accountant",
		Department:    domain.DepartmentFinance,
		DailySalary:   decimal.NewFromInt(900),
	}
}

func existing() []domain.Employee {
	return []domain.Employee{
		{ID: "e1", EmployeeCode: "EMP-001", Name: "Meera Nair", Department: domain.DepartmentHR, DailySalary: decimal.NewFromInt(1000)},
		{ID: "e3", EmployeeCode: "EMP-003", Name: "Kabir Shah", Department: domain.DepartmentIT, DailySalary: decimal.NewFromInt(1200)},
	}
}

func TestService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	var saved domain.Employee
	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil)
	deps.store.EXPECT().AddEmployee(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.Employee) error {
			saved = e
			return nil
		})

	resp, err := deps.service.Create(ctx, validRequest())
	require.NoError(t, err)

	_, parseErr := uuid.Parse(resp.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, resp.ID, saved.ID)
	assert.Equal(t, "EMP-002", saved.EmployeeCode)
	assert.True(t, saved.DailySalary.Equal(decimal.NewFromInt(900)))
}

func TestService_Create_DuplicateCode(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	req := validRequest()
	req.EmployeeCode = "emp-001"
	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil)

	_, err := deps.service.Create(ctx, req)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
}

func TestService_Create_InvalidInput(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	req := validRequest()
	req.DailySalary = decimal.Zero
	_, err := deps.service.Create(ctx, req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidDailySalary)

	req = validRequest()
	req.DailySalary = decimal.NewFromInt(-5)
	_, err = deps.service.Create(ctx, req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidDailySalary)

	req = validRequest()
	req.Department = "Legal"
	_, err = deps.service.Create(ctx, req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidDepartment)

	req = validRequest()
	req.JoiningDate = "01-06-2023"
	_, err = deps.service.Create(ctx, req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)

	req = validRequest()
	req.EmployeeCode = "   "
	_, err = deps.service.Create(ctx, req)
	assert.ErrorIs(t, err, apperror.RequiredField("employee_code"))

	req = validRequest()
	req.Name = "\t "
	_, err = deps.service.Create(ctx, req)
	assert.ErrorIs(t, err, apperror.RequiredField("name"))
}

func TestService_Update_BlankCode(t *testing.T) {
	deps := setupServiceTest(t)

	req := employee.UpdateEmployeeRequest(validRequest())
	req.EmployeeCode = " "
	_, err := deps.service.Update(context.Background(), "e1", req)

	assert.ErrorIs(t, err, apperror.RequiredField("employee_code"))
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
}

func TestService_Create_StoreError(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	boom := errors.New("disk full")

	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil)
	deps.store.EXPECT().AddEmployee(ctx, gomock.Any()).Return(boom)

	_, err := deps.service.Create(ctx, validRequest())
	assert.ErrorIs(t, err, boom)
}

func TestService_GetAll_Search(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil).Times(2)

	all, err := deps.service.GetAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "e1", all[0].ID)
	assert.Equal(t, "e3", all[1].ID)

	found, err := deps.service.GetAll(ctx, " it ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Kabir Shah", found[0].Name)
}

func TestService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil).Times(2)

	resp, err := deps.service.GetByID(ctx, "e3")
	require.NoError(t, err)
	assert.Equal(t, "EMP-003", resp.EmployeeCode)

	_, err = deps.service.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	req := employee.UpdateEmployeeRequest(validRequest())
	req.EmployeeCode = "EMP-001"
	req.DailySalary = decimal.NewFromInt(1500)

	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil)
	deps.store.EXPECT().UpdateEmployee(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.Employee) error {
			assert.Equal(t, "e1", e.ID)
			assert.True(t, e.DailySalary.Equal(decimal.NewFromInt(1500)))
			return nil
		})

	resp, err := deps.service.Update(ctx, "e1", req)
	require.NoError(t, err)
	assert.Equal(t, "e1", resp.ID)
	assert.Equal(t, "EMP-001", resp.EmployeeCode)
}

func TestService_Update_Failures(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil).Times(2)

	_, err := deps.service.Update(ctx, "missing", employee.UpdateEmployeeRequest(validRequest()))
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)

	req := employee.UpdateEmployeeRequest(validRequest())
	req.EmployeeCode = "EMP-003"
	_, err = deps.service.Update(ctx, "e1", req)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
}

func TestService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil)
	deps.store.EXPECT().ListAttendance(ctx).Return([]domain.AttendanceRecord{
		{ID: "e1-2024-03-01", EmployeeID: "e1", Date: "2024-03-01", Status: domain.StatusPresent},
		{ID: "e3-2024-03-01", EmployeeID: "e3", Date: "2024-03-01", Status: domain.StatusPresent},
		{ID: "e1-2024-03-02", EmployeeID: "e1", Date: "2024-03-02", Status: domain.StatusAbsent},
	}, nil)
	deps.store.EXPECT().DeleteEmployee(ctx, "e1").Return(nil)

	require.NoError(t, deps.service.Delete(ctx, "e1"))

	require.Len(t, deps.audit.entries, 1)
	entry := deps.audit.entries[0]
	assert.Equal(t, "EMPLOYEE_DELETED", entry.Action)
	assert.Equal(t, 2, entry.Meta["attendance_removed"])
	assert.Equal(t, "EMP-001", entry.Meta["employee_code"])
}

func TestService_Delete_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.store.EXPECT().ListEmployees(ctx).Return(existing(), nil)

	err := deps.service.Delete(ctx, "missing")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.Empty(t, deps.audit.entries)
}
