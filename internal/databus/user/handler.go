package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lernora/conversation-service/internal/config"
	"github.com/lernora/conversation-service/internal/model"
)

type DBRepo interface {
	UpsertUser(ctx context.Context, profile *model.UserProfile) error
	UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error
	UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error
}

// UpdatedMessage is the user databus payload; only changed fields are
// set.
type UpdatedMessage struct {
	UUID       string  `json:"uuid"`
	Nickname   *string `json:"nickname,omitempty"`
	AvatarLink *string `json:"avatar_link,omitempty"`
}

type Handler struct {
	repo DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdatedHandler")

	var msg UpdatedMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return
	}

	if msg.UUID == "" {
		logger.Error("user update without uuid skipped")
		return
	}

	// A full profile creates the cache row when it is missing; partial
	// updates only touch existing rows.
	if msg.Nickname != nil && msg.AvatarLink != nil {
		profile := &model.UserProfile{ID: msg.UUID, Nickname: *msg.Nickname, AvatarURL: *msg.AvatarLink}
		if err := h.repo.UpsertUser(ctx, profile); err != nil {
			logger.Error(fmt.Sprintf("failed to upsert profile for %s: %v", msg.UUID, err))
		}
		return
	}

	if msg.Nickname != nil {
		if err := h.repo.UpdateUserNickname(ctx, msg.UUID, *msg.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname for %s: %v", msg.UUID, err))
		}
	}

	if msg.AvatarLink != nil {
		if err := h.repo.UpdateUserAvatar(ctx, msg.UUID, *msg.AvatarLink); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar for %s: %v", msg.UUID, err))
		}
	}
}
