package shortcontext

import (
	"context"
	"os/signal"
	"syscall"
)

func New() (context.Context, func()) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
