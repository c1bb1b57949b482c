package set_date_exception

import (
	"context"

	techModels "github.com/roltrader/autoperks/internal/service/technicians/models"
)

type TechnicianService interface {
	SetDateException(ctx context.Context, technicianID int64, req *techModels.SetDateExceptionRequest) (*techModels.DateExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
