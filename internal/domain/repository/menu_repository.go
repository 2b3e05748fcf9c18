package repository

import (
	"context"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
)

// MenuRepository defines the interface for catalog data operations
type MenuRepository interface {
	List(ctx context.Context) ([]entity.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []entity.MenuItem) error
}
