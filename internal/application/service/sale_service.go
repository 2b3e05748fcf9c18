package service

import (
	"context"
	"strings"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo repository.SaleRepository
	log      *logrus.Logger
	clock
}

// NewSaleService creates a new sale service. Dates default to today in loc.
func NewSaleService(saleRepo repository.SaleRepository, loc *time.Location, log *logrus.Logger) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		log:      log,
		clock:    newClock(loc),
	}
}

// CreateSaleInput represents one sold line
type CreateSaleInput struct {
	OrderID     *string
	ProductType enum.ProductType
	Item        string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  *decimal.Decimal // as sent by the client, checked against the recomputed total
	Date        string
}

// CreateSale records one line. The total is always unit price times
// quantity; a client-sent total that disagrees is replaced and logged.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	input.Item = strings.TrimSpace(input.Item)

	var v apperror.Validator
	v.Check(input.ProductType.IsValid(), "tipo", "must be one of lanche, lanche_gourmet, porcao, bebida")
	v.Check(input.Item != "", "item", "is required")
	v.Check(input.Quantity >= 1, "quantidade", "must be at least 1")
	v.Check(!input.UnitPrice.IsNegative(), "valor_unitario", "must not be negative")
	v.Check(input.Date == "" || validDate(input.Date), "data", "must be a date in YYYY-MM-DD format")
	if err := v.Err(); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		ProductType: input.ProductType,
		Item:        input.Item,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice.Round(2),
		Date:        input.Date,
	}
	if input.OrderID != nil && strings.TrimSpace(*input.OrderID) != "" {
		orderID := strings.TrimSpace(*input.OrderID)
		sale.OrderID = &orderID
	}
	if sale.Date == "" {
		sale.Date = s.today()
	}
	sale.Recalculate()
	if input.TotalPrice != nil && !input.TotalPrice.Round(2).Equal(sale.TotalPrice) {
		s.log.WithFields(logrus.Fields{
			"item":        sale.Item,
			"quantidade":  sale.Quantity,
			"valor_total": input.TotalPrice.String(),
			"recomputed":  sale.TotalPrice.StringFixed(2),
		}).Warn("Client total disagrees with unit price times quantity")
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// ListSales returns sales newest first, optionally for a single date
func (s *SaleService) ListSales(ctx context.Context, date string) ([]entity.Sale, error) {
	if err := checkDateFilter("data", date); err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.List(ctx, date)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []entity.Sale{}
	}
	return sales, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uint) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListOrder returns the lines of one order. Keys of the form single-<id>
// resolve to the sale with that id.
func (s *SaleService) ListOrder(ctx context.Context, orderKey string) ([]entity.Sale, error) {
	if id, ok := parseSingleOrderKey(orderKey); ok {
		sale, err := s.GetSale(ctx, id)
		if err != nil {
			return nil, apperror.NewNotFoundError("Order")
		}
		if sale.OrderKey() != orderKey {
			return nil, apperror.NewNotFoundError("Order")
		}
		return []entity.Sale{*sale}, nil
	}

	sales, err := s.saleRepo.ListByOrderID(ctx, orderKey)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, apperror.NewNotFoundError("Order")
	}
	return sales, nil
}

// UpdateQuantity changes a line's quantity and recomputes its total
func (s *SaleService) UpdateQuantity(ctx context.Context, id uint, quantity int) (*entity.Sale, error) {
	if quantity < 1 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantidade", Message: "must be at least 1"},
		})
	}

	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}

	sale.Quantity = quantity
	sale.Recalculate()
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteSale removes one line
func (s *SaleService) DeleteSale(ctx context.Context, id uint) error {
	if _, err := s.GetSale(ctx, id); err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}
