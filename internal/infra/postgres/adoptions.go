package postgres

import (
	"context"
	"strings"

	"petpromise/internal/domain/adoption"
	"petpromise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var requestDocColumns = map[string]string{
	"isRequested": "is_requested",
	"adopted":     "adopted",
}

type RequestRepository struct {
	db DBTX
}

func NewRequestRepository(db DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `id, pet_id, owner_email, requestor_email, requestor_name,
	requestor_phone, requestor_address, pet_name, pet_image, is_requested, adopted, created_at`

func scanRequest(row pgx.Row) (*adoption.Request, error) {
	var req adoption.Request
	err := row.Scan(&req.ID, &req.PetID, &req.OwnerEmail, &req.RequestorEmail, &req.RequestorName,
		&req.RequestorPhone, &req.RequestorAddress, &req.PetName, &req.PetImage,
		&req.IsRequested, &req.Adopted, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*adoption.Request, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+requestColumns+" FROM adoption_requests WHERE id = $1", id)
	req, err := scanRequest(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find adoption request", err)
	}
	return req, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *adoption.Request) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO adoption_requests (id, pet_id, owner_email, requestor_email, requestor_name,
		   requestor_phone, requestor_address, pet_name, pet_image, is_requested, adopted, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		req.ID, req.PetID, req.OwnerEmail, req.RequestorEmail, req.RequestorName,
		req.RequestorPhone, req.RequestorAddress, req.PetName, req.PetImage,
		req.IsRequested, req.Adopted, req.CreatedAt)
	if err != nil {
		return wrapQueryErr("failed to create adoption request", err)
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM adoption_requests WHERE id = $1", id)
	if err != nil {
		return wrapQueryErr("failed to delete adoption request", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("adoption request not found")
	}
	return nil
}

func requestFilterSQL(f queries.RequestFilter) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.OwnerEmail != "" {
		args = append(args, f.OwnerEmail)
		conds = append(conds, "owner_email = "+placeholder(len(args)))
	}
	if f.IsRequested != nil {
		args = append(args, *f.IsRequested)
		conds = append(conds, "is_requested = "+placeholder(len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *RequestRepository) List(ctx context.Context, f queries.RequestFilter, limit, offset int32) ([]adoption.Request, error) {
	where, args := requestFilterSQL(f)
	args = append(args, limit, offset)
	query := "SELECT " + requestColumns + " FROM adoption_requests" + where +
		" ORDER BY created_at DESC LIMIT " + placeholder(len(args)-1) + " OFFSET " + placeholder(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list adoption requests", err)
	}
	defer rows.Close()

	requests := make([]adoption.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan adoption request row", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed reading adoption request rows", err)
	}
	return requests, nil
}

func (r *RequestRepository) Count(ctx context.Context, f queries.RequestFilter) (int64, error) {
	where, args := requestFilterSQL(f)
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM adoption_requests"+where, args...).Scan(&total)
	if err != nil {
		return 0, wrapQueryErr("failed to count adoption requests", err)
	}
	return total, nil
}

func (r *RequestRepository) Kind() string { return "adoption request" }

func (r *RequestRepository) Fetch(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	req, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":               req.ID,
		"petId":            req.PetID,
		"ownerEmail":       req.OwnerEmail,
		"requestorEmail":   req.RequestorEmail,
		"requestorName":    req.RequestorName,
		"requestorPhone":   req.RequestorPhone,
		"requestorAddress": req.RequestorAddress,
		"petName":          req.PetName,
		"petImage":         req.PetImage,
		"isRequested":      req.IsRequested,
		"adopted":          req.Adopted,
		"createdAt":        req.CreatedAt,
	}, nil
}

func (r *RequestRepository) Apply(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return applyPatch(ctx, r.db, "adoption_requests", requestDocColumns, id, fields)
}
