package conversation

import (
	"context"

	"github.com/lernora/conversation-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, id int64) (*model.Message, error)
	ListMessagesBefore(ctx context.Context, conv model.Conversation, before *model.Cursor, limit uint64) (model.MessageList, error)
	ListMessagesAfter(ctx context.Context, conv model.Conversation, after model.Cursor, limit uint64) (model.MessageList, error)
	HasMessageBefore(ctx context.Context, conv model.Conversation, cursor model.Cursor) (bool, error)
	HasMessageAfter(ctx context.Context, conv model.Conversation, cursor model.Cursor) (bool, error)
	UpdateMessageSeenBy(ctx context.Context, id int64, seenBy model.SeenBySet) error
}
