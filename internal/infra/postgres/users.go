package postgres

import (
	"context"

	"petpromise/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// userDocColumns lists the user fields a mutation may touch, keyed by their
// public names.
var userDocColumns = map[string]string{
	"name":     "name",
	"photoURL": "photo_url",
	"role":     "role",
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, name, photo_url, role, created_at"

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) findByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find user by id", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, name, photo_url, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Name, u.PhotoURL, u.Role, u.CreatedAt)
	if err != nil {
		return wrapQueryErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) ListExcept(ctx context.Context, email string, limit, offset int32) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+userColumns+` FROM users
		 WHERE email <> $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		email, limit, offset)
	if err != nil {
		return nil, wrapQueryErr("failed to list users", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan user row", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed reading user rows", err)
	}
	return users, nil
}

func (r *UserRepository) CountExcept(ctx context.Context, email string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE email <> $1", email).Scan(&total)
	if err != nil {
		return 0, wrapQueryErr("failed to count users", err)
	}
	return total, nil
}

func (r *UserRepository) Kind() string { return "user" }

func (r *UserRepository) Fetch(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	u, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":        u.ID,
		"email":     u.Email,
		"name":      u.Name,
		"photoURL":  u.PhotoURL,
		"role":      string(u.Role),
		"createdAt": u.CreatedAt,
	}, nil
}

func (r *UserRepository) Apply(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return applyPatch(ctx, r.db, "users", userDocColumns, id, fields)
}
