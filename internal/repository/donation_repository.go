package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// DonationRepository encapsulates blood donor persistence.
type DonationRepository interface {
	Create(ctx context.Context, donor *domain.BloodDonation) error
	List(ctx context.Context, status *domain.DonorStatus) ([]domain.BloodDonation, error)
	UpdateStatus(ctx context.Context, id string, status domain.DonorStatus) error
}

type donationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository instantiates repository.
func NewDonationRepository(pool *pgxpool.Pool) DonationRepository {
	return &donationRepository{pool: pool}
}

func (r *donationRepository) Create(ctx context.Context, donor *domain.BloodDonation) error {
	const query = `
        INSERT INTO blood_donations (name, phone, email, age, blood_group, weight, last_donation_date, medical_conditions, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		donor.Name,
		donor.Phone,
		donor.Email,
		donor.Age,
		donor.BloodGroup,
		donor.Weight,
		donor.LastDonationDate,
		donor.MedicalConditions,
		donor.Status,
	).Scan(&donor.ID, &donor.CreatedAt, &donor.UpdatedAt)
}

func (r *donationRepository) List(ctx context.Context, status *domain.DonorStatus) ([]domain.BloodDonation, error) {
	const base = `
        SELECT id, name, phone, email, age, blood_group, weight, last_donation_date, medical_conditions, status, created_at, updated_at
        FROM blood_donations`

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

	var result []domain.BloodDonation
	for rows.Next() {
		var donor domain.BloodDonation
		if err := rows.Scan(
			&donor.ID,
			&donor.Name,
			&donor.Phone,
			&donor.Email,
			&donor.Age,
			&donor.BloodGroup,
			&donor.Weight,
			&donor.LastDonationDate,
			&donor.MedicalConditions,
			&donor.Status,
			&donor.CreatedAt,
			&donor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, donor)
	}
	return result, rows.Err()
}

func (r *donationRepository) UpdateStatus(ctx context.Context, id string, status domain.DonorStatus) error {
	const query = `UPDATE blood_donations SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
