package suggest_slots

import (
	"context"

	suggestSlots "github.com/roltrader/autoperks/internal/usecase/suggest_slots"
)

type SuggestSlotsUseCase interface {
	Execute(ctx context.Context, req *suggestSlots.Request) (*suggestSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
