package institutions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oddam/donations/internal/models"
)

// Repository handles institution and category persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an institutions repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) queryInstitutions(ctx context.Context, q string, args ...any) ([]models.Institution, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Institution
	for rows.Next() {
		var inst models.Institution
		var typ int16
		if err := rows.Scan(&inst.ID, &inst.Name, &inst.Description, &typ); err != nil {
			return nil, err
		}
		inst.Type = models.InstitutionType(typ)
		list = append(list, inst)
	}
	return list, rows.Err()
}

// ListByType returns institutions of type t ordered by name, with their categories.
func (r *Repository) ListByType(ctx context.Context, t models.InstitutionType) ([]models.Institution, error) {
	const q = `SELECT id, name, description, type FROM institutions WHERE type = $1 ORDER BY name, id`
	list, err := r.queryInstitutions(ctx, q, int16(t))
	if err != nil {
		return nil, fmt.Errorf("list institutions by type %d: %w", t, err)
	}
	if err := r.attachCategories(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListByNameLength returns all institutions, longest name first, with their categories.
func (r *Repository) ListByNameLength(ctx context.Context) ([]models.Institution, error) {
	const q = `SELECT id, name, description, type FROM institutions ORDER BY char_length(name) DESC, name, id`
	list, err := r.queryInstitutions(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	if err := r.attachCategories(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListByAllCategories returns institutions tagged with every one of categoryIDs, ordered by name.
func (r *Repository) ListByAllCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]models.Institution, error) {
	const q = `SELECT i.id, i.name, i.description, i.type
		FROM institutions i
		WHERE i.id IN (
			SELECT ic.institution_id
			FROM institution_categories ic
			WHERE ic.category_id = ANY($1)
			GROUP BY ic.institution_id
			HAVING COUNT(DISTINCT ic.category_id) = $2
		)
		ORDER BY i.name, i.id`
	ids := distinct(categoryIDs)
	list, err := r.queryInstitutions(ctx, q, ids, len(ids))
	if err != nil {
		return nil, fmt.Errorf("list institutions by categories: %w", err)
	}
	if err := r.attachCategories(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachCategories fills Categories on every institution in list.
func (r *Repository) attachCategories(ctx context.Context, list []models.Institution) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(list))
	index := make(map[uuid.UUID]int, len(list))
	for i, inst := range list {
		ids[i] = inst.ID
		index[inst.ID] = i
	}
	const q = `SELECT ic.institution_id, c.id, c.name
		FROM institution_categories ic
		INNER JOIN categories c ON c.id = ic.category_id
		WHERE ic.institution_id = ANY($1)
		ORDER BY c.name`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("load institution categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var instID uuid.UUID
		var cat models.Category
		if err := rows.Scan(&instID, &cat.ID, &cat.Name); err != nil {
			return fmt.Errorf("scan institution category: %w", err)
		}
		if i, ok := index[instID]; ok {
			list[i].Categories = append(list[i].Categories, cat)
		}
	}
	return rows.Err()
}

// GetByID returns an institution by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Institution, error) {
	const q = `SELECT id, name, description, type FROM institutions WHERE id = $1`
	var inst models.Institution
	var typ int16
	err := r.pool.QueryRow(ctx, q, id).Scan(&inst.ID, &inst.Name, &inst.Description, &typ)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get institution %s: %w", id, err)
	}
	inst.Type = models.InstitutionType(typ)
	return &inst, nil
}

// Count returns the number of institutions.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM institutions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count institutions: %w", err)
	}
	return n, nil
}

// ListCategories returns all categories, longest name first.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY char_length(name) DESC, name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountCategories returns how many of ids exist.
func (r *Repository) CountCategories(ctx context.Context, ids []uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE id = ANY($1)`, distinct(ids)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// EnsureCategory fills c.ID with the category named c.Name, inserting it if missing.
func (r *Repository) EnsureCategory(ctx context.Context, c *models.Category) error {
	// DO UPDATE so RETURNING yields the existing row on conflict.
	const q = `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`
	if err := r.pool.QueryRow(ctx, q, c.Name).Scan(&c.ID); err != nil {
		return fmt.Errorf("ensure category: %w", err)
	}
	return nil
}

// Create inserts an institution together with its category links.
func (r *Repository) Create(ctx context.Context, inst *models.Institution) error {
	if !inst.Type.Valid() {
		return fmt.Errorf("create institution: invalid type %d", inst.Type)
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const q = `INSERT INTO institutions (name, description, type) VALUES ($1, $2, $3) RETURNING id`
		if err := tx.QueryRow(ctx, q, inst.Name, inst.Description, int16(inst.Type)).Scan(&inst.ID); err != nil {
			return fmt.Errorf("create institution: %w", err)
		}
		ids := make([]uuid.UUID, 0, len(inst.Categories))
		for _, c := range inst.Categories {
			ids = append(ids, c.ID)
		}
		if len(ids) == 0 {
			return nil
		}
		const link = `INSERT INTO institution_categories (institution_id, category_id)
			SELECT $1, unnest($2::uuid[])`
		if _, err := tx.Exec(ctx, link, inst.ID, distinct(ids)); err != nil {
			return fmt.Errorf("link institution categories: %w", err)
		}
		return nil
	})
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
