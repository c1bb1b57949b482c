package list_blocked_times

import (
	"context"

	blockedModels "github.com/roltrader/autoperks/internal/service/blockedtimes/models"
)

type BlockedTimeService interface {
	List(ctx context.Context, req *blockedModels.ListBlockedTimesRequest) (*blockedModels.BlockedTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
