package models

// AlertReport - пользовательское сообщение об инциденте, ожидающее отправки на бэкенд
type AlertReport struct {
	Title           string   `json:"title"`
	TitleEn         string   `json:"titleEn,omitempty"`
	Message         string   `json:"message"`
	MessageEn       string   `json:"messageEn,omitempty"`
	Severity        Severity `json:"severity"`
	Area            string   `json:"area,omitempty"`
	Pincode         string   `json:"pincode,omitempty"`
	Source          string   `json:"source,omitempty"`
	ReporterName    string   `json:"reporterName,omitempty"`
	ReporterContact string   `json:"reporterContact,omitempty"`
}

// SubmitStatus - результат отправки сообщения
type SubmitStatus string

const (
	SubmitStatusSynced SubmitStatus = "synced"
	SubmitStatusQueued SubmitStatus = "queued"
)

// SubmitResult возвращается из SubmitReport
type SubmitResult struct {
	Status SubmitStatus `json:"status"`
	Alert  Alert        `json:"alert"`
}

// CloneReports возвращает независимую копию очереди
func CloneReports(reports []AlertReport) []AlertReport {
	out := make([]AlertReport, len(reports))
	copy(out, reports)
	return out
}
