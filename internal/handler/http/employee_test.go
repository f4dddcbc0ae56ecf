package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/storage"
	"github.com/oryfolks/hrms-backend-go/internal/repository/memory"
	employeeService "github.com/oryfolks/hrms-backend-go/internal/service/employee"
	leaveService "github.com/oryfolks/hrms-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxUpload = 32

func newDocumentRouter(t *testing.T) (chi.Router, employee.EmployeeService) {
	t.Helper()
	s := memory.NewStore()
	repos := employeeService.Repositories{
		Employee:      memory.NewEmployeeRepository(s),
		CompanyDetail: memory.NewCompanyDetailRepository(s),
		Profile:       memory.NewProfileRepository(s),
		Document:      memory.NewDocumentRepository(s),
		User:          memory.NewUserRepository(s),
		Balance:       memory.NewBalanceRepository(s),
		Leave:         memory.NewLeaveRepository(s),
		Reporting:     memory.NewReportingRepository(s),
		Timesheet:     memory.NewTimesheetRepository(s),
	}
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = files.Close() })

	balanceSvc := leaveService.NewBalanceService(s, repos.Balance, repos.Employee, repos.CompanyDetail, leaveService.NewEntitlementCalculator(nil))
	svc := employeeService.NewEmployeeService(s, repos, balanceSvc, files, "welcome")
	h := NewEmployeeHandler(svc, testMaxUpload)

	r := chi.NewRouter()
	r.Post("/employees/{id}/documents/upload", h.UploadDocument)
	r.Get("/employees/{id}/documents/{docID}/file", h.DownloadDocument)
	return r, svc
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestEmployeeHandler_UploadAndDownload(t *testing.T) {
	router, svc := newDocumentRouter(t)
	emp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		PersonalDetails: employee.PersonalDetails{FirstName: "Grace", LastName: "Hopper", Email: "grace@corp.example"},
	})
	require.NoError(t, err)

	body, contentType := multipartBody(t, map[string]string{
		"document_type": "TECHNICAL",
		"document_name": "Certificate",
	}, "cobol.txt", []byte("compiler"))
	req := httptest.NewRequest(http.MethodPost, "/employees/"+emp.ID+"/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data employee.DocumentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "cobol.txt", created.Data.FileName)
	assert.EqualValues(t, 8, created.Data.FileSize)

	req = httptest.NewRequest(http.MethodGet, created.Data.FileURL[len("/api/v1"):], nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "compiler", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="cobol.txt"`)
}

func TestEmployeeHandler_UploadRejects(t *testing.T) {
	router, svc := newDocumentRouter(t)
	emp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		PersonalDetails: employee.PersonalDetails{FirstName: "Alan", LastName: "Turing", Email: "alan@corp.example"},
	})
	require.NoError(t, err)
	fields := map[string]string{"document_type": "OTHER", "document_name": "Notes"}

	tests := []struct {
		name     string
		fileName string
		content  []byte
		status   int
	}{
		{"missing file", "", nil, http.StatusBadRequest},
		{"too large", "big.bin", bytes.Repeat([]byte("x"), testMaxUpload+1), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, fields, tt.fileName, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/employees/"+emp.ID+"/documents/upload", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/employees/"+emp.ID+"/documents/unknown/file", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
