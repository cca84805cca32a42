package moderation

import (
	"context"
	"time"

	"github.com/lernora/conversation-service/internal/model"
)

type DBRepo interface {
	GetMessage(ctx context.Context, id int64) (*model.Message, error)
	MarkMessageDeleted(ctx context.Context, id int64, by model.Participant, at time.Time) error
	SaveReport(ctx context.Context, report *model.Report) error
}
