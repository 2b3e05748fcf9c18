package repository

import (
	"context"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Order("category ASC").
		Order("position ASC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}

func (r *menuRepository) CreateBatch(ctx context.Context, items []entity.MenuItem) error {
	return r.db.WithContext(ctx).CreateInBatches(items, 50).Error
}
