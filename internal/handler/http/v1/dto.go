package v1

import "time"

// RefreshRequest DTO для обновления списка оповещений
// @Description DTO для обновления списка оповещений. Пустое тело повторяет последние фильтры.
type RefreshRequest struct {
	Pincode         string `json:"pincode,omitempty" validate:"omitempty,numeric,len=6"`
	Area            string `json:"area,omitempty" validate:"omitempty,max=100"`
	IncludeInactive bool   `json:"includeInactive,omitempty"`
}

// ReportRequest DTO для сообщения жителя об инциденте
// @Description DTO для сообщения жителя об инциденте
type ReportRequest struct {
	Title           string `json:"title" validate:"required,min=2,max=200"`
	TitleEn         string `json:"titleEn,omitempty" validate:"omitempty,max=200"`
	Message         string `json:"message" validate:"required,min=2,max=2000"`
	MessageEn       string `json:"messageEn,omitempty" validate:"omitempty,max=2000"`
	Severity        string `json:"severity" validate:"required,oneof=critical high medium low"`
	Area            string `json:"area,omitempty" validate:"omitempty,max=100"`
	Pincode         string `json:"pincode,omitempty" validate:"omitempty,numeric,len=6"`
	Source          string `json:"source,omitempty" validate:"omitempty,max=100"`
	ReporterName    string `json:"reporterName,omitempty" validate:"omitempty,max=100"`
	ReporterContact string `json:"reporterContact,omitempty" validate:"omitempty,max=100"`
}

// AlertResponse DTO для ответа с оповещением
// @Description DTO для ответа с оповещением
type AlertResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleEn       string    `json:"titleEn"`
	Message       string    `json:"message"`
	MessageEn     string    `json:"messageEn"`
	Severity      string    `json:"severity"`
	Timestamp     time.Time `json:"timestamp"`
	Source        string    `json:"source"`
	AffectedAreas []string  `json:"affectedAreas"`
	Pincodes      []string  `json:"pincodes"`
	IsActive      bool      `json:"isActive"`
}

// PendingReportResponse DTO для сообщения в офлайн-очереди
// @Description DTO для сообщения в офлайн-очереди
type PendingReportResponse struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Area     string `json:"area,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

// StateResponse DTO для ответа с состоянием синхронизации
// @Description DTO для ответа с состоянием синхронизации
type StateResponse struct {
	Alerts         []AlertResponse         `json:"alerts"`
	Loading        bool                    `json:"loading"`
	Error          *string                 `json:"error"`
	LastSync       *time.Time              `json:"lastSync"`
	IsUsingBackend bool                    `json:"isUsingBackend"`
	PendingReports []PendingReportResponse `json:"pendingReports"`
}

// SubmitResponse DTO для ответа на отправку сообщения
// @Description DTO для ответа на отправку сообщения
type SubmitResponse struct {
	Status string        `json:"status"`
	Alert  AlertResponse `json:"alert"`
}

// HealthResponse DTO для health-check
// @Description DTO для health-check
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}
