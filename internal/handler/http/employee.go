package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
)

const (
	// multipartMemory is held in memory before parts spill to temp files.
	multipartMemory   = 1 << 20
	multipartOverhead = 64 << 10
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)

	ListDocuments(w http.ResponseWriter, r *http.Request)
	AddDocument(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
	DownloadDocument(w http.ResponseWriter, r *http.Request)
	DeleteDocument(w http.ResponseWriter, r *http.Request)

	ListMissingCompanyDetails(w http.ResponseWriter, r *http.Request)
	GetCompanyDetail(w http.ResponseWriter, r *http.Request)
	AddCompanyDetail(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	maxUploadSize   int64
}

func NewEmployeeHandler(employeeService employee.EmployeeService, maxUploadSize int64) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService, maxUploadSize: maxUploadSize}
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := e.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewEmployeeResponses(employees))
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, "CreateEmployee", &req) {
		return
	}

	created, err := e.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", employee.NewEmployeeResponse(created))
}

// Get implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := e.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewEmployeeResponse(emp))
}

// GetMe implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	emp, err := e.employeeService.GetEmployeeByUserID(r.Context(), claims.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewEmployeeResponse(emp))
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, "UpdateEmployee", &req) {
		return
	}

	updated, err := e.employeeService.UpdateEmployee(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", employee.NewEmployeeResponse(updated))
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := e.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Deactivate implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := e.employeeService.DeactivateEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}

// GetProfile implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := e.employeeService.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewProfileResponse(profile))
}

// ListDocuments implements EmployeeHandler.
func (e *EmployeeHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := e.employeeService.ListDocuments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewDocumentResponses(docs))
}

// AddDocument implements EmployeeHandler.
func (e *EmployeeHandlerImpl) AddDocument(w http.ResponseWriter, r *http.Request) {
	var req employee.AddDocumentRequest
	if !decodeJSON(w, r, "AddDocument", &req) {
		return
	}

	doc, err := e.employeeService.AddDocument(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Document added successfully", employee.NewDocumentResponse(doc))
}

// UploadDocument implements EmployeeHandler. Expects multipart/form-data with
// a "file" part plus document_type and document_name fields.
func (e *EmployeeHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, e.maxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		slog.Error("UploadDocument parse error", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(w, "File is too large", map[string]string{"file": fmt.Sprintf("file must not exceed %d bytes", e.maxUploadSize)})
			return
		}
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", map[string]string{"file": "file is required"})
		return
	}
	defer file.Close()
	if header.Size > e.maxUploadSize {
		response.BadRequest(w, "File is too large", map[string]string{"file": fmt.Sprintf("file must not exceed %d bytes", e.maxUploadSize)})
		return
	}

	req := employee.UploadDocumentRequest{
		DocumentType: r.FormValue("document_type"),
		DocumentName: r.FormValue("document_name"),
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
	}
	doc, err := e.employeeService.UploadDocument(r.Context(), chi.URLParam(r, "id"), req, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Document uploaded successfully", employee.NewDocumentResponse(doc))
}

// DownloadDocument implements EmployeeHandler.
func (e *EmployeeHandlerImpl) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	doc, rc, err := e.employeeService.OpenDocument(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "docID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	if err := response.Stream(w, doc.ContentType, doc.FileName, doc.FileSize, rc); err != nil {
		slog.Error("DownloadDocument copy error", "document_id", doc.ID, "error", err)
	}
}

// DeleteDocument implements EmployeeHandler.
func (e *EmployeeHandlerImpl) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	err := e.employeeService.DeleteDocument(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "docID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}

// ListMissingCompanyDetails implements EmployeeHandler.
func (e *EmployeeHandlerImpl) ListMissingCompanyDetails(w http.ResponseWriter, r *http.Request) {
	employees, err := e.employeeService.ListEmployeesWithoutCompanyDetail(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewEmployeeResponses(employees))
}

// GetCompanyDetail implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetCompanyDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := e.employeeService.GetCompanyDetail(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewCompanyDetailResponse(detail))
}

// AddCompanyDetail implements EmployeeHandler.
func (e *EmployeeHandlerImpl) AddCompanyDetail(w http.ResponseWriter, r *http.Request) {
	var req employee.CompanyDetailRequest
	if !decodeJSON(w, r, "AddCompanyDetail", &req) {
		return
	}

	detail, err := e.employeeService.AddCompanyDetail(r.Context(), chi.URLParam(r, "employeeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company details added successfully", employee.NewCompanyDetailResponse(detail))
}
