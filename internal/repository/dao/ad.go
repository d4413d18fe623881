package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
)

type Ad struct {
	ID uint `gorm:"primaryKey"`

	ItemName  string `gorm:"not null"`
	Category  string `gorm:"not null"`
	Type      string `gorm:"not null"`
	Location  string `gorm:"not null"`
	Phone     string `gorm:"not null"`
	Image     string
	IsPremium bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type AdDAO struct {
	db *gorm.DB
}

func NewAdDAO(db *gorm.DB) *AdDAO {
	return &AdDAO{
		db: db,
	}
}

// Insert persists a single ad. The id comes from the serial sequence,
// so concurrent inserts never collide.
func (d *AdDAO) Insert(ctx context.Context, ad Ad) (Ad, error) {
	result := d.db.WithContext(ctx).Create(&ad)
	if result.Error != nil {
		return Ad{}, classifyError(result.Error)
	}

	return ad, nil
}

func (d *AdDAO) FindAll(ctx context.Context) ([]Ad, error) {
	var ads []Ad
	result := d.db.WithContext(ctx).Find(&ads)
	if result.Error != nil {
		return nil, classifyError(result.Error)
	}

	return ads, nil
}

func (d *AdDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	result := d.db.WithContext(ctx).Model(&Ad{}).Count(&count)
	if result.Error != nil {
		return 0, classifyError(result.Error)
	}

	return count, nil
}

// classifyError maps connection-class Postgres failures to
// ErrStoreUnavailable so callers can report them without leaking
// driver internals. Everything else passes through unchanged.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code) {
		return ErrStoreUnavailable
	}

	return err
}
