package list_date_exceptions

import (
	"context"

	techModels "github.com/roltrader/autoperks/internal/service/technicians/models"
)

type TechnicianService interface {
	ListDateExceptions(ctx context.Context, technicianID int64) (*techModels.DateExceptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
