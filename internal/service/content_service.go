package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// ContentService serves read-only site content with a Redis read-through
// cache. Content rows change rarely and are written by external admin
// tooling, so a short TTL is enough.
type ContentService struct {
	repo   repository.ContentRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewContentService constructs the service. cache may be nil; reads then go
// straight to the repository.
func NewContentService(repo repository.ContentRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *ContentService {
	return &ContentService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// Gallery lists gallery images, optionally narrowed by category and featured flag.
func (s *ContentService) Gallery(ctx context.Context, filter repository.GalleryFilter) ([]domain.GalleryImage, error) {
	key := fmt.Sprintf("content:gallery:%s:%s", deref(filter.Category), derefBool(filter.Featured))

	var cached []domain.GalleryImage
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	images, err := s.repo.ListGallery(ctx, filter)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	s.cacheSet(ctx, key, images)
	return images, nil
}

// Testimonials lists testimonials, optionally only featured ones.
func (s *ContentService) Testimonials(ctx context.Context, featured *bool) ([]domain.Testimonial, error) {
	key := "content:testimonials:" + derefBool(featured)

	var cached []domain.Testimonial
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.repo.ListTestimonials(ctx, featured)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	s.cacheSet(ctx, key, items)
	return items, nil
}

func (s *ContentService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil || s.ttl <= 0 {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("content cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Debug("content cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *ContentService) cacheSet(ctx context.Context, key string, val any) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Debug("content cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "1"
	}
	return "0"
}
