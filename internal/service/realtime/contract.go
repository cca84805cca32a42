//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package realtime

import (
	"context"

	"github.com/lernora/conversation-service/internal/model"
	"github.com/lernora/conversation-service/internal/service/reaction"
)

type ConversationStore interface {
	Append(ctx context.Context, message *model.Message) (*model.Message, error)
	AddSeenBy(ctx context.Context, id int64, p model.Participant) (*model.Message, error)
}

type ReactionLedger interface {
	Upsert(ctx context.Context, messageID int64, p model.Participant, kind string, toggle bool) (*reaction.State, error)
	Remove(ctx context.Context, messageID int64, p model.Participant) (*reaction.State, error)
}

type ModerationService interface {
	SoftDelete(ctx context.Context, messageID int64, requester model.Participant) (*model.Message, error)
}

type PresenceRegistry interface {
	MarkOnline(ctx context.Context, p model.Participant) (bool, error)
	MarkOffline(ctx context.Context, p model.Participant) (bool, error)
}

type Publisher interface {
	Publish(ctx context.Context, channel string, event model.RealtimeEvent) error
}

type Validator interface {
	ValidateContent(content string) error
	ValidateReactionKind(kind string) error
}
