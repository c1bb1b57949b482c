package create_technician

import (
	"context"

	techModels "github.com/roltrader/autoperks/internal/service/technicians/models"
)

type TechnicianService interface {
	Create(ctx context.Context, req *techModels.CreateTechnicianRequest) (*techModels.TechnicianResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
