package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/application/service"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// PrintOrderReceipt handles POST /pedidos/:pedido_id/recibo
func (h *PrinterHandler) PrintOrderReceipt(c *gin.Context) {
	receipt, err := h.printerService.PrintOrderReceipt(c.Request.Context(), c.Param("pedido_id"))
	if err != nil {
		// If receipt was built but printing failed, return receipt with warning
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Order receipt printed successfully", gin.H{
		"receipt": receipt,
	})
}
