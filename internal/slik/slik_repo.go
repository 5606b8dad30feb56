package slik

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=slik_repo.go -destination=mock/slik_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *SlikKTP) error
	FindAllByUser(ctx context.Context, userID string) ([]SlikKTP, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]SlikKTP, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, s *SlikKTP) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]SlikKTP, error) {
	var rows []SlikKTP
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]SlikKTP, error) {
	var rows []SlikKTP
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
