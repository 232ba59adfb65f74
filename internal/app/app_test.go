package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-ems/internal/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) Config {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin@123"), bcrypt.MinCost)
	require.NoError(t, err)
	return Config{
		Port:  "0",
		Env:   "development",
		Store: StoreConfig{Driver: "memory"},
		Admin: AdminConfig{
			Email:        "admin@gmail.com",
			Name:         "Administrator",
			PasswordHash: string(hash),
		},
		JWTSecret:        "test-secret",
		SessionTTL:       time.Hour,
		MissingDayPolicy: attendance.MissingDayIgnore,
	}
}

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestBuildApp_EndToEnd(t *testing.T) {
	a, err := BuildApp(testConfig(t), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()
	h := a.Router

	w := do(t, h, http.MethodGet, "/api/v1/employees", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"admin@gmail.com","password":"admin@123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Data.AccessToken
	require.NotEmpty(t, token)

	w = do(t, h, http.MethodPost, "/api/v1/employees", token, `{
		"employee_code": "EMP-001",
		"name": "Meera Nair",
		"email": "meera@example.com",
		"phone": "+91 90000 00001",
		"address": "4 Park Street, Kolkata",
		"national_id": "1111 2222 3333",
		"account_name": "Meera Nair",
		"account_number": "000111222333",
		"joining_date": "2023-01-02",
		"position": "Analyst",
		"department": "Finance",
		"daily_salary": 1000
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID

	for date, status := range map[string]string{
		"2024-03-01": "present",
		"2024-03-02": "present",
		"2024-03-03": "off-day-work",
		"2024-03-04": "absent",
	} {
		body := `{"employee_id":"` + id + `","date":"` + date + `","status":"` + status + `"}`
		w = do(t, h, http.MethodPut, "/api/v1/attendances", token, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/api/v1/reports/salary?from=2024-03-01&to=2024-03-04", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rep struct {
		Data struct {
			Rows []struct {
				EmployeeID  string `json:"employee_id"`
				TotalSalary string `json:"total_salary"`
			} `json:"rows"`
			Totals struct {
				TotalSalary string `json:"total_salary"`
			} `json:"totals"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	require.Len(t, rep.Data.Rows, 1)
	assert.Equal(t, "EMP-001", rep.Data.Rows[0].EmployeeID)
	assert.Equal(t, "2500", rep.Data.Rows[0].TotalSalary)
	assert.Equal(t, "2500", rep.Data.Totals.TotalSalary)

	w = do(t, h, http.MethodGet, "/api/v1/reports/salary/pdf?from=2024-03-01&to=2024-03-04", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w = do(t, h, http.MethodPost, "/api/v1/reports/salary/exports", token, `{}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(t, h, http.MethodDelete, "/api/v1/employees/"+id, token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/employees/"+id+"/attendances?from=2024-03-01&to=2024-03-04", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildApp_FileStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store = StoreConfig{Driver: "file", Path: t.TempDir()}

	a, err := BuildApp(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, a.Router)
	assert.NoError(t, a.Close())
}

func TestAdminAccount_HashesPlainPassword(t *testing.T) {
	admin, err := adminAccount(AdminConfig{Email: "admin@gmail.com", Password: "admin@123"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin@123")))
}
