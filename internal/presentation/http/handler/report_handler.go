package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/application/service"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/response"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Daily handles GET /relatorio/diario?data=YYYY-MM-DD
func (h *ReportHandler) Daily(c *gin.Context) {
	var req request.DailyReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	report, err := h.reportService.DailyReport(c.Request.Context(), req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Relatório diário gerado", report)
}

// Period handles GET /relatorio/periodo?data_inicio=...&data_fim=...
func (h *ReportHandler) Period(c *gin.Context) {
	var req request.PeriodReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "data_inicio and data_fim must be dates (YYYY-MM-DD)")
		return
	}

	report, err := h.reportService.PeriodReport(c.Request.Context(), req.DataInicio, req.DataFim)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Relatório do período gerado", report)
}
