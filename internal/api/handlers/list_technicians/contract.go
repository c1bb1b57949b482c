package list_technicians

import (
	"context"

	techModels "github.com/roltrader/autoperks/internal/service/technicians/models"
)

type TechnicianService interface {
	List(ctx context.Context, onlyActive bool) (*techModels.TechnicianListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
