package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/application/service"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /despesas
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		Description: req.Descricao,
		Category:    req.Categoria,
		Amount:      req.Valor,
		Date:        req.Data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Despesa registrada com sucesso!", gin.H{"id": expense.ID})
}

// List handles GET /despesas?data=YYYY-MM-DD
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter request.DateFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Despesas carregadas", expenses)
}

// Delete handles DELETE /despesas/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Despesa excluída com sucesso!", nil)
}
