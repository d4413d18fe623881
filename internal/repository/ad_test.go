package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odolbodol/adboard/internal/domain"
	"github.com/odolbodol/adboard/internal/repository/dao"
)

type stubAdDAO struct {
	rows   []dao.Ad
	nextID uint
}

func (d *stubAdDAO) Insert(_ context.Context, ad dao.Ad) (dao.Ad, error) {
	d.nextID++
	ad.ID = d.nextID
	d.rows = append(d.rows, ad)

	return ad, nil
}

func (d *stubAdDAO) FindAll(_ context.Context) ([]dao.Ad, error) {
	return d.rows, nil
}

func (d *stubAdDAO) Count(_ context.Context) (int64, error) {
	return int64(len(d.rows)), nil
}

func TestAdRepository_CreateAndFindAll(t *testing.T) {
	repo := NewAdRepository(&stubAdDAO{})
	ctx := context.Background()

	ad := domain.Ad{
		ItemName:  "Guitar",
		Category:  domain.CategoryInstrument,
		Type:      domain.TypeSale,
		Location:  "Sylhet",
		Phone:     "01911223344",
		Image:     "data:image/png;base64,iVBORw0KGgo=",
		IsPremium: true,
	}

	created, err := repo.Create(ctx, ad)
	require.NoError(t, err)

	ad.ID = created.ID
	assert.Equal(t, ad, created, "every field should survive the dao round trip")

	found, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created, found[0])

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAdRepository_FindAll_Empty(t *testing.T) {
	repo := NewAdRepository(&stubAdDAO{})

	found, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}
