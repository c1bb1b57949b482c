package update_technician

import (
	"context"

	techModels "github.com/roltrader/autoperks/internal/service/technicians/models"
)

type TechnicianService interface {
	Update(ctx context.Context, id int64, req *techModels.UpdateTechnicianRequest) (*techModels.TechnicianResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
