package presence

import (
	"context"

	"github.com/lernora/conversation-service/internal/model"
)

// Registry tracks which participants currently hold at least one live
// connection. MarkOnline/MarkOffline are idempotent set operations and
// report whether membership actually changed, so callers emit
// online/offline transition events only on real state changes.
type Registry interface {
	MarkOnline(ctx context.Context, p model.Participant) (changed bool, err error)
	MarkOffline(ctx context.Context, p model.Participant) (changed bool, err error)
	IsOnline(ctx context.Context, p model.Participant) (bool, error)
}
