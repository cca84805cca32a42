package reaction

import (
	"context"

	"github.com/lernora/conversation-service/internal/model"
)

type DBRepo interface {
	GetMessage(ctx context.Context, id int64) (*model.Message, error)
	UpdateMessageReactions(ctx context.Context, id int64, reactions model.ReactionList, counts model.ReactionCounts) error
}
