package repository

import (
	"context"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uint) (*entity.Sale, error)
	// List returns sales newest first. An empty date lists every day.
	List(ctx context.Context, date string) ([]entity.Sale, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uint) error
}
