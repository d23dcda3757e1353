package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// ContactRepository encapsulates contact message persistence.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context, status *domain.ContactStatus) ([]domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository instantiates repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (name, email, phone, subject, message, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
		msg.Status,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *contactRepository) List(ctx context.Context, status *domain.ContactStatus) ([]domain.ContactMessage, error) {
	const base = `
        SELECT id, name, email, phone, subject, message, status, created_at
        FROM contact_messages`

	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE status=$1 ORDER BY created_at DESC`, *status)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Subject,
			&msg.Message,
			&msg.Status,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}

// UpdateStatus sets only the status column; contact_messages has no updated_at.
func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	const query = `UPDATE contact_messages SET status=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
