package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/application/service"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/response"
)

// MenuHandler serves the catalog
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu handles GET /cardapio
func (h *MenuHandler) GetMenu(c *gin.Context) {
	menu, err := h.menuService.GetMenu(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cardápio carregado", menu)
}

// GetExpenseCategories handles GET /categorias-despesa
func (h *MenuHandler) GetExpenseCategories(c *gin.Context) {
	response.OK(c, "Categorias carregadas", h.menuService.ExpenseCategories())
}
