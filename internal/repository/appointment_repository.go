package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// AppointmentRepository encapsulates appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	List(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository instantiates repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (name, phone, email, service, preferred_date, preferred_time, message, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		appt.Name,
		appt.Phone,
		appt.Email,
		appt.Service,
		appt.PreferredDate,
		appt.PreferredTime,
		appt.Message,
		appt.Status,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

func (r *appointmentRepository) List(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	const base = `
        SELECT id, name, phone, email, service, preferred_date, preferred_time, message, status, created_at, updated_at
        FROM appointments`

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

	var result []domain.Appointment
	for rows.Next() {
		var appt domain.Appointment
		if err := rows.Scan(
			&appt.ID,
			&appt.Name,
			&appt.Phone,
			&appt.Email,
			&appt.Service,
			&appt.PreferredDate,
			&appt.PreferredTime,
			&appt.Message,
			&appt.Status,
			&appt.CreatedAt,
			&appt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, appt)
	}
	return result, rows.Err()
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	const query = `UPDATE appointments SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
