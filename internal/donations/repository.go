package donations

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oddam/donations/internal/models"
)

// Repository handles donation persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a donations repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts d and its category links in one transaction, filling ID, CreatedAt and IsTaken.
func (r *Repository) Create(ctx context.Context, d *models.Donation) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const q = `INSERT INTO donations (user_id, institution_id, quantity, phone_number, address, city, zip_code,
			pick_up_date, pick_up_time, pick_up_comment)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, is_taken, created_at`
		err := tx.QueryRow(ctx, q, d.UserID, d.InstitutionID, d.Quantity, d.PhoneNumber, d.Address, d.City, d.ZipCode,
			d.PickUpDate, d.PickUpTime, d.PickUpComment).
			Scan(&d.ID, &d.IsTaken, &d.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert donation: %w", err)
		}
		if len(d.CategoryIDs) == 0 {
			return nil
		}
		const link = `INSERT INTO donation_categories (donation_id, category_id)
			SELECT $1, unnest($2::uuid[])
			ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, link, d.ID, d.CategoryIDs); err != nil {
			return fmt.Errorf("link donation categories: %w", err)
		}
		return nil
	})
}

// SumQuantity returns the total quantity over all donations, nil when there are none.
func (r *Repository) SumQuantity(ctx context.Context) (*int64, error) {
	var sum *int64
	if err := r.pool.QueryRow(ctx, `SELECT SUM(quantity) FROM donations`).Scan(&sum); err != nil {
		return nil, fmt.Errorf("sum donation quantity: %w", err)
	}
	return sum, nil
}

// ListByUser returns the user's donations, pending before collected, earliest pick-up first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DonationView, error) {
	const q = `SELECT d.id, d.user_id, d.institution_id, d.quantity, d.phone_number, d.address, d.city, d.zip_code,
			d.pick_up_date, d.pick_up_time, d.pick_up_comment, d.is_taken, d.created_at,
			i.name,
			COALESCE(array_agg(c.name ORDER BY c.name) FILTER (WHERE c.id IS NOT NULL), '{}')
		FROM donations d
		INNER JOIN institutions i ON i.id = d.institution_id
		LEFT JOIN donation_categories dc ON dc.donation_id = d.id
		LEFT JOIN categories c ON c.id = dc.category_id
		WHERE d.user_id = $1
		GROUP BY d.id, i.name
		ORDER BY d.is_taken, d.pick_up_date, d.created_at`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()
	var list []models.DonationView
	for rows.Next() {
		var v models.DonationView
		if err := rows.Scan(&v.ID, &v.UserID, &v.InstitutionID, &v.Quantity, &v.PhoneNumber, &v.Address, &v.City, &v.ZipCode,
			&v.PickUpDate, &v.PickUpTime, &v.PickUpComment, &v.IsTaken, &v.CreatedAt,
			&v.InstitutionName, &v.CategoryNames); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// MarkTaken flags a donation owned by userID as collected. Repeating it is a no-op.
func (r *Repository) MarkTaken(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE donations SET is_taken = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("mark donation taken: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
