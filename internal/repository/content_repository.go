package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// GalleryFilter narrows gallery listing.
type GalleryFilter struct {
	Category *string
	Featured *bool
}

// ContentRepository reads site content rows managed by external admin tooling.
type ContentRepository interface {
	ListGallery(ctx context.Context, filter GalleryFilter) ([]domain.GalleryImage, error)
	ListTestimonials(ctx context.Context, featured *bool) ([]domain.Testimonial, error)
}

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository instantiates repository.
func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &contentRepository{pool: pool}
}

func (r *contentRepository) ListGallery(ctx context.Context, filter GalleryFilter) ([]domain.GalleryImage, error) {
	base := `SELECT id, title, description, image_url, category, is_featured, created_at FROM gallery_images`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, fmt.Sprintf("is_featured=$%d", len(args)))
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC", base, strings.Join(clauses, " AND "))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.GalleryImage
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.Title, &img.Description, &img.ImageURL, &img.Category, &img.IsFeatured, &img.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	return result, rows.Err()
}

func (r *contentRepository) ListTestimonials(ctx context.Context, featured *bool) ([]domain.Testimonial, error) {
	const base = `SELECT id, name, treatment, rating, message, is_featured, created_at FROM testimonials`

	query := base + ` ORDER BY created_at DESC`
	args := []any{}
	if featured != nil {
		query = base + ` WHERE is_featured=$1 ORDER BY created_at DESC`
		args = append(args, *featured)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Treatment, &t.Rating, &t.Message, &t.IsFeatured, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
