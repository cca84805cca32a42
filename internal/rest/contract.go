//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/lernora/conversation-service/internal/model"
	"github.com/lernora/conversation-service/internal/service/conversation"
	"github.com/lernora/conversation-service/internal/service/reaction"
	"github.com/lernora/conversation-service/internal/service/realtime"
)

type ConversationStore interface {
	FetchPage(ctx context.Context, conv model.Conversation, limit int, before *model.Cursor) (*conversation.Page, error)
	FetchAround(ctx context.Context, conv model.Conversation, pivotID int64, limit int) (*conversation.Window, error)
}

type ModerationService interface {
	Report(ctx context.Context, messageID int64, reporter model.Participant, reason string) (*model.Report, error)
}

type ProfileProvider interface {
	GetUser(ctx context.Context, id string) (*model.UserProfile, error)
}

type Dispatcher interface {
	Identify(ctx context.Context, clientID string, p model.Participant) error
	Disconnect(ctx context.Context, clientID string) error
	Resolve(clientID string) (model.Participant, bool)
	Send(ctx context.Context, req realtime.SendRequest) (*realtime.SendAck, error)
	Typing(ctx context.Context, req realtime.TypingRequest) error
	MarkSeen(ctx context.Context, req realtime.SeenRequest) (*model.Message, error)
	React(ctx context.Context, req realtime.ReactRequest) (*reaction.State, error)
	Unreact(ctx context.Context, req realtime.UnreactRequest) (*reaction.State, error)
	Delete(ctx context.Context, req realtime.DeleteRequest) (*model.Message, error)
}

type Validator interface {
	ValidateSubscribeChannel(channel string, p model.Participant) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string, role model.Role) (string, int64, error)
	GenerateSubscribeToken(userID string, role model.Role, channel string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error)
}
