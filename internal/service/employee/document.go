package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/storage"
)

// documentFileURL is where the HTTP layer serves an uploaded document.
const documentFileURL = "/api/v1/employees/%s/documents/%s/file"

const defaultContentType = "application/octet-stream"

// AddDocument implements employee.EmployeeService. Only the metadata is
// stored; the file itself lives wherever FileURL points.
func (s *EmployeeServiceImpl) AddDocument(ctx context.Context, employeeID string, req employee.AddDocumentRequest) (employee.Document, error) {
	if err := req.Validate(); err != nil {
		return employee.Document{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return employee.Document{}, err
	}

	doc, err := s.documentRepo.Create(ctx, employee.Document{
		EmployeeID:   employeeID,
		DocumentType: req.DocumentType,
		DocumentName: req.DocumentName,
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		ContentType:  req.ContentType,
		FileSize:     req.FileSize,
	})
	if err != nil {
		return employee.Document{}, err
	}

	slog.Info("Document added", "employee_id", employeeID, "document_id", doc.ID, "type", doc.DocumentType)
	return doc, nil
}

// UploadDocument implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadDocument(ctx context.Context, employeeID string, req employee.UploadDocumentRequest, file io.Reader) (employee.Document, error) {
	if err := req.Validate(); err != nil {
		return employee.Document{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return employee.Document{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Document{}, fmt.Errorf("failed to generate document id: %w", err)
	}
	docID := id.String()
	key := path.Join("employees", employeeID, docID+strings.ToLower(path.Ext(path.Base(req.FileName))))

	size, err := s.files.Save(ctx, key, file)
	if err != nil {
		return employee.Document{}, fmt.Errorf("failed to store document: %w", err)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	doc, err := s.documentRepo.Create(ctx, employee.Document{
		ID:           docID,
		EmployeeID:   employeeID,
		DocumentType: req.DocumentType,
		DocumentName: req.DocumentName,
		FileName:     path.Base(req.FileName),
		FileURL:      fmt.Sprintf(documentFileURL, employeeID, docID),
		ContentType:  contentType,
		FileSize:     size,
		StoragePath:  key,
	})
	if err != nil {
		s.removeFile(ctx, key)
		return employee.Document{}, err
	}

	slog.Info("Document uploaded", "employee_id", employeeID, "document_id", doc.ID, "type", doc.DocumentType, "size", size)
	return doc, nil
}

// OpenDocument implements employee.EmployeeService.
func (s *EmployeeServiceImpl) OpenDocument(ctx context.Context, employeeID, documentID string) (employee.Document, io.ReadCloser, error) {
	doc, err := s.ownedDocument(ctx, employeeID, documentID)
	if err != nil {
		return employee.Document{}, nil, err
	}
	if doc.StoragePath == "" {
		return employee.Document{}, nil, employee.ErrDocumentFileNotFound
	}

	rc, err := s.files.Open(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return employee.Document{}, nil, employee.ErrDocumentFileNotFound
		}
		return employee.Document{}, nil, err
	}
	return doc, rc, nil
}

// ListDocuments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDocuments(ctx context.Context, employeeID string) ([]employee.Document, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.documentRepo.ListByEmployeeID(ctx, employeeID)
}

// DeleteDocument implements employee.EmployeeService. A document owned by
// another employee is reported as not found.
func (s *EmployeeServiceImpl) DeleteDocument(ctx context.Context, employeeID, documentID string) error {
	doc, err := s.ownedDocument(ctx, employeeID, documentID)
	if err != nil {
		return err
	}
	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return err
	}
	if doc.StoragePath != "" {
		s.removeFile(ctx, doc.StoragePath)
	}
	return nil
}

func (s *EmployeeServiceImpl) ownedDocument(ctx context.Context, employeeID, documentID string) (employee.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return employee.Document{}, err
	}
	if doc.EmployeeID != employeeID {
		return employee.Document{}, employee.ErrDocumentNotFound
	}
	return doc, nil
}

// removeFile deletes a stored file whose metadata is already gone. Failures
// leave an orphan file behind and are only logged.
func (s *EmployeeServiceImpl) removeFile(ctx context.Context, key string) {
	if err := s.files.Remove(ctx, key); err != nil {
		slog.Warn("Failed to remove stored document", "path", key, "error", err)
	}
}
