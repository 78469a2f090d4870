package postgres

import (
	"context"
	"strconv"
	"strings"

	"petpromise/internal/domain/pet"
	"petpromise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var petDocColumns = map[string]string{
	"petName":          "name",
	"petCategory":      "category",
	"petAge":           "age",
	"petLocation":      "location",
	"shortDescription": "short_description",
	"longDescription":  "long_description",
	"petImage":         "image_url",
	"adopted":          "adopted",
	"isRequested":      "is_requested",
}

type PetRepository struct {
	db DBTX
}

func NewPetRepository(db DBTX) *PetRepository {
	return &PetRepository{db: db}
}

const petColumns = `id, owner_email, name, category, age, location,
	short_description, long_description, image_url, adopted, is_requested, created_at`

func scanPet(row pgx.Row) (*pet.Pet, error) {
	var p pet.Pet
	err := row.Scan(&p.ID, &p.OwnerEmail, &p.Name, &p.Category, &p.Age, &p.Location,
		&p.ShortDescription, &p.LongDescription, &p.ImageURL, &p.Adopted, &p.IsRequested, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+petColumns+" FROM pets WHERE id = $1", id)
	p, err := scanPet(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find pet", err)
	}
	return p, nil
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pets (id, owner_email, name, category, age, location,
		   short_description, long_description, image_url, adopted, is_requested, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.OwnerEmail, p.Name, p.Category, p.Age, p.Location,
		p.ShortDescription, p.LongDescription, p.ImageURL, p.Adopted, p.IsRequested, p.CreatedAt)
	if err != nil {
		return wrapQueryErr("failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM pets WHERE id = $1", id)
	if err != nil {
		return wrapQueryErr("failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("pet not found")
	}
	return nil
}

// petFilterSQL builds the WHERE clause shared by List and Count. Conditions
// are ANDed; absent filter members contribute nothing.
func petFilterSQL(f queries.PetFilter) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", placeholder(len(args)), 1))
	}

	if f.Adopted != nil {
		add("adopted = ?", *f.Adopted)
	}
	if f.Category != "" {
		add("LOWER(category) = LOWER(?)", f.Category)
	}
	if f.NameSearch != "" {
		add("name ILIKE ?", "%"+f.NameSearch+"%")
	}
	if f.OwnerEmail != "" {
		add("owner_email = ?", f.OwnerEmail)
	}
	if f.ExcludeOwnerEmail != "" {
		add("owner_email <> ?", f.ExcludeOwnerEmail)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (r *PetRepository) List(ctx context.Context, f queries.PetFilter, limit, offset int32) ([]pet.Pet, error) {
	where, args := petFilterSQL(f)
	args = append(args, limit, offset)
	query := "SELECT " + petColumns + " FROM pets" + where +
		" ORDER BY created_at DESC LIMIT " + placeholder(len(args)-1) + " OFFSET " + placeholder(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list pets", err)
	}
	defer rows.Close()

	pets := make([]pet.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan pet row", err)
		}
		pets = append(pets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed reading pet rows", err)
	}
	return pets, nil
}

func (r *PetRepository) Count(ctx context.Context, f queries.PetFilter) (int64, error) {
	where, args := petFilterSQL(f)
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM pets"+where, args...).Scan(&total)
	if err != nil {
		return 0, wrapQueryErr("failed to count pets", err)
	}
	return total, nil
}

func (r *PetRepository) Kind() string { return "pet" }

func (r *PetRepository) Fetch(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":               p.ID,
		"ownerEmail":       p.OwnerEmail,
		"petName":          p.Name,
		"petCategory":      p.Category,
		"petAge":           p.Age,
		"petLocation":      p.Location,
		"shortDescription": p.ShortDescription,
		"longDescription":  p.LongDescription,
		"petImage":         p.ImageURL,
		"adopted":          p.Adopted,
		"isRequested":      p.IsRequested,
		"createdAt":        p.CreatedAt,
	}, nil
}

func (r *PetRepository) Apply(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return applyPatch(ctx, r.db, "pets", petDocColumns, id, fields)
}
