package ports

import (
	"context"

	"github.com/tovenja/blocksift/pkg/domain"
)

// Notifier receives the notice emitted after each pass. Display components
// (match list, highlight overlay) subscribe through this port instead of a
// broadcast event.
type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, notice domain.Notice)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, notice domain.Notice) {
	f(ctx, notice)
}
