package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/odolbodol/adboard/internal/domain"
	"github.com/odolbodol/adboard/internal/repository"
)

var (
	ErrStoreUnavailable = repository.ErrStoreUnavailable
)

type AdRepository interface {
	Create(ctx context.Context, ad domain.Ad) (domain.Ad, error)
	FindAll(ctx context.Context) ([]domain.Ad, error)
	Count(ctx context.Context) (int64, error)
}

type AdService struct {
	repo AdRepository
}

func NewAdService(repo AdRepository) *AdService {
	return &AdService{
		repo: repo,
	}
}

func (s *AdService) CreateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error) {
	created, err := s.repo.Create(ctx, ad)
	if err != nil {
		return domain.Ad{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AdService) ListAds(ctx context.Context) ([]domain.Ad, error) {
	ads, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return ads, nil
}

// SeedSampleAds inserts example ads on first startup, detected by the
// collection being empty. Later startups are a no-op, so the seed runs
// exactly once per database.
func (s *AdService) SeedSampleAds(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.Count -> %w", err)
	}
	if count > 0 {
		return nil
	}

	zap.L().Info("seeding database")

	samples := []domain.Ad{
		{
			ItemName:  "Higher Math",
			Category:  domain.CategoryBook,
			Type:      domain.TypeExchange,
			Location:  "Dhaka",
			Phone:     "01711223344",
			IsPremium: true,
		},
		{
			ItemName:  "Physics",
			Category:  domain.CategoryBook,
			Type:      domain.TypeExchange,
			Location:  "Chittagong",
			Phone:     "01811223344",
			IsPremium: false,
		},
	}
	for _, sample := range samples {
		if _, err = s.repo.Create(ctx, sample); err != nil {
			return fmt.Errorf("s.repo.Create -> %w", err)
		}
	}

	zap.L().Info("seeding complete")

	return nil
}
