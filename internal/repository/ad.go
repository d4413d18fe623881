package repository

import (
	"context"
	"fmt"

	"github.com/odolbodol/adboard/internal/domain"
	"github.com/odolbodol/adboard/internal/repository/dao"
)

var (
	ErrStoreUnavailable = dao.ErrStoreUnavailable
)

type AdDAO interface {
	Insert(ctx context.Context, ad dao.Ad) (dao.Ad, error)
	FindAll(ctx context.Context) ([]dao.Ad, error)
	Count(ctx context.Context) (int64, error)
}

type AdRepository struct {
	dao AdDAO
}

func NewAdRepository(dao AdDAO) *AdRepository {
	return &AdRepository{
		dao: dao,
	}
}

func (r *AdRepository) Create(ctx context.Context, ad domain.Ad) (domain.Ad, error) {
	created, err := r.dao.Insert(ctx, dao.Ad{
		ItemName:  ad.ItemName,
		Category:  ad.Category,
		Type:      ad.Type,
		Location:  ad.Location,
		Phone:     ad.Phone,
		Image:     ad.Image,
		IsPremium: ad.IsPremium,
	})
	if err != nil {
		return domain.Ad{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AdRepository) FindAll(ctx context.Context) ([]domain.Ad, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	ads := make([]domain.Ad, 0, len(found))
	for _, ad := range found {
		ads = append(ads, r.daoToDomain(ad))
	}

	return ads, nil
}

func (r *AdRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *AdRepository) daoToDomain(ad dao.Ad) domain.Ad {
	return domain.Ad{
		ID:        ad.ID,
		ItemName:  ad.ItemName,
		Category:  ad.Category,
		Type:      ad.Type,
		Location:  ad.Location,
		Phone:     ad.Phone,
		Image:     ad.Image,
		IsPremium: ad.IsPremium,
	}
}
