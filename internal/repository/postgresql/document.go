package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

const documentColumns = `id, employee_id, document_type, document_name, file_name, file_url, content_type, file_size, storage_path, uploaded_at`

func scanDocument(row pgx.Row) (employee.Document, error) {
	var d employee.Document
	err := row.Scan(&d.ID, &d.EmployeeID, &d.DocumentType, &d.DocumentName, &d.FileName, &d.FileURL, &d.ContentType, &d.FileSize, &d.StoragePath, &d.UploadedAt)
	return d, err
}

// Create implements employee.DocumentRepository. A preset ID is kept.
func (r *documentRepositoryImpl) Create(ctx context.Context, d employee.Document) (employee.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_documents (id, employee_id, document_type, document_name, file_name, file_url, content_type, file_size, storage_path)
		VALUES (COALESCE(NULLIF($1, '')::uuid, uuidv7()), $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query, d.ID, d.EmployeeID, d.DocumentType, d.DocumentName, d.FileName, d.FileURL, d.ContentType, d.FileSize, d.StoragePath))
	if err != nil {
		return employee.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return created, nil
}

// GetByID implements employee.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Document, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDocument(q.QueryRow(ctx, `SELECT `+documentColumns+` FROM employee_documents WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Document{}, employee.ErrDocumentNotFound
		}
		return employee.Document{}, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return d, nil
}

// ListByEmployeeID implements employee.DocumentRepository.
func (r *documentRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]employee.Document, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+documentColumns+` FROM employee_documents WHERE employee_id = $1 ORDER BY uploaded_at DESC, id`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := make([]employee.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

// Delete implements employee.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrDocumentNotFound
	}
	return nil
}

// DeleteByEmployeeID implements employee.DocumentRepository.
func (r *documentRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_documents WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}

func NewDocumentRepository(db *database.DB) employee.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}
