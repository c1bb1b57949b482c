package create_blocked_time

import (
	"context"

	blockedModels "github.com/roltrader/autoperks/internal/service/blockedtimes/models"
)

type BlockedTimeService interface {
	Create(ctx context.Context, req *blockedModels.CreateBlockedTimeRequest) (*blockedModels.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
