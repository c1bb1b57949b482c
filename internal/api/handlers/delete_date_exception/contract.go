package delete_date_exception

import "context"

type TechnicianService interface {
	ClearDateException(ctx context.Context, technicianID int64, dateStr string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
