package service

import (
	"context"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/repository"
)

// MenuService serves the catalog and the expense categories
type MenuService struct {
	menuRepo   repository.MenuRepository
	categories []string
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository, expenseCategories []string) *MenuService {
	return &MenuService{
		menuRepo:   menuRepo,
		categories: expenseCategories,
	}
}

// EnsureSeeded stores items when the catalog is empty and reports how many
// were added.
func (s *MenuService) EnsureSeeded(ctx context.Context, items []entity.MenuItem) (int, error) {
	count, err := s.menuRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 || len(items) == 0 {
		return 0, nil
	}
	if err := s.menuRepo.CreateBatch(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// GetMenu returns the catalog grouped by category
func (s *MenuService) GetMenu(ctx context.Context) (*entity.Menu, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	menu := entity.NewMenu()
	for _, item := range items {
		menu.Add(item)
	}
	return menu, nil
}

// ExpenseCategories returns the labels offered when registering an expense
func (s *MenuService) ExpenseCategories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}
