package request

// DailyReportRequest selects the day of a daily report
type DailyReportRequest struct {
	Data string `form:"data" binding:"omitempty,datetime=2006-01-02"`
}

// PeriodReportRequest selects an inclusive date range; missing bounds mean today
type PeriodReportRequest struct {
	DataInicio string `form:"data_inicio" binding:"omitempty,datetime=2006-01-02"`
	DataFim    string `form:"data_fim" binding:"omitempty,datetime=2006-01-02"`
}
