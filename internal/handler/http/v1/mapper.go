package v1

import "github.com/shenikar/chennai_live_alerts/internal/models"

// DTOToReportModel преобразует DTO сообщения в доменную модель
func DTOToReportModel(dto ReportRequest) models.AlertReport {
	return models.AlertReport{
		Title:           dto.Title,
		TitleEn:         dto.TitleEn,
		Message:         dto.Message,
		MessageEn:       dto.MessageEn,
		Severity:        models.Severity(dto.Severity),
		Area:            dto.Area,
		Pincode:         dto.Pincode,
		Source:          dto.Source,
		ReporterName:    dto.ReporterName,
		ReporterContact: dto.ReporterContact,
	}
}

// DTOToFilters преобразует DTO обновления в фильтры
func DTOToFilters(dto RefreshRequest) models.AlertFilters {
	return models.AlertFilters{
		Pincode:         dto.Pincode,
		Area:            dto.Area,
		IncludeInactive: dto.IncludeInactive,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model models.Alert) AlertResponse {
	resp := AlertResponse{
		ID:            model.ID,
		Title:         model.Title,
		TitleEn:       model.TitleEn,
		Message:       model.Message,
		MessageEn:     model.MessageEn,
		Severity:      string(model.Severity),
		Timestamp:     model.Timestamp,
		Source:        model.Source,
		AffectedAreas: model.AffectedAreas,
		Pincodes:      model.Pincodes,
		IsActive:      model.IsActive,
	}
	if resp.AffectedAreas == nil {
		resp.AffectedAreas = []string{}
	}
	if resp.Pincodes == nil {
		resp.Pincodes = []string{}
	}
	return resp
}

// ModelToStateResponse преобразует снимок состояния в DTO
func ModelToStateResponse(state models.SyncState) StateResponse {
	resp := StateResponse{
		Alerts:         make([]AlertResponse, len(state.Alerts)),
		Loading:        state.Loading,
		LastSync:       state.LastSync,
		IsUsingBackend: state.IsUsingBackend,
		PendingReports: make([]PendingReportResponse, len(state.PendingReports)),
	}
	for i, alert := range state.Alerts {
		resp.Alerts[i] = ModelToAlertResponse(alert)
	}
	for i, report := range state.PendingReports {
		resp.PendingReports[i] = PendingReportResponse{
			Title:    report.Title,
			Message:  report.Message,
			Severity: string(report.Severity),
			Area:     report.Area,
			Pincode:  report.Pincode,
		}
	}
	if state.Error != "" {
		msg := state.Error
		resp.Error = &msg
	}
	return resp
}

func modeOf(state models.SyncState) string {
	if state.IsUsingBackend {
		return "backend"
	}
	return "simulation"
}
