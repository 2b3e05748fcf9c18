package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/application/service"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/response"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles POST /vendas
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		OrderID:     req.OrderID,
		ProductType: req.Tipo,
		Item:        req.Item,
		Quantity:    req.Quantidade,
		UnitPrice:   req.ValorUnitario,
		TotalPrice:  req.ValorTotal,
		Date:        req.Data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Venda registrada com sucesso!", gin.H{"id": sale.ID})
}

// List handles GET /vendas?data=YYYY-MM-DD
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.DateFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), filter.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendas carregadas", sales)
}

// Update handles PUT /vendas/:id
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.saleService.UpdateQuantity(c.Request.Context(), id, req.Quantidade)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Venda atualizada com sucesso!", sale)
}

// Delete handles DELETE /vendas/:id
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Venda excluída com sucesso!", nil)
}
