package conversation

import (
	"context"
	"fmt"

	"github.com/lernora/conversation-service/internal/model"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	defaultAroundLimit = 40
	maxAroundLimit     = 200
)

// Store owns durable append and pagination-stable retrieval of the
// messages of a participant pair. All ordering decisions go through the
// (created_at, id) tuple; realtime arrival order is never trusted.
type Store struct {
	repo DBRepo
}

func New(repo DBRepo) *Store {
	return &Store{repo: repo}
}

// Page is one slice of a conversation in ascending canonical order.
type Page struct {
	Messages model.MessageList `json:"messages"`
	HasMore  bool              `json:"has_more"`
}

// Window is the result of an around-fetch: the pivot with its
// neighbours, plus existence flags for both directions.
type Window struct {
	Messages      model.MessageList `json:"messages"`
	HasMoreBefore bool              `json:"has_more_before"`
	HasMoreAfter  bool              `json:"has_more_after"`
}

// Append validates the reply reference and persists the message. The
// id and creation timestamp are assigned by the store, not the caller.
func (s *Store) Append(ctx context.Context, message *model.Message) (*model.Message, error) {
	if message.ReplyTo != nil {
		parent, err := s.repo.GetMessage(ctx, *message.ReplyTo)
		if err != nil {
			return nil, model.NewPersistenceError("failed to resolve reply target", err)
		}
		if parent == nil {
			return nil, model.NewValidationError(fmt.Sprintf("reply target %d does not exist", *message.ReplyTo))
		}
		if !parent.Conversation().Equal(message.Conversation()) {
			return nil, model.NewParticipantMismatchError("reply target belongs to another conversation")
		}
	}

	if err := s.repo.SaveMessage(ctx, message); err != nil {
		return nil, model.NewPersistenceError("failed to save message", err)
	}

	return message, nil
}

// Get resolves a message that must belong to conv.
func (s *Store) Get(ctx context.Context, conv model.Conversation, id int64) (*model.Message, error) {
	message, err := s.repo.GetMessage(ctx, id)
	if err != nil {
		return nil, model.NewPersistenceError("failed to get message", err)
	}
	if message == nil {
		return nil, model.NewNotFoundError(fmt.Sprintf("message %d does not exist", id))
	}
	if !message.Conversation().Equal(conv) {
		return nil, model.NewParticipantMismatchError(fmt.Sprintf("message %d belongs to another conversation", id))
	}
	return message, nil
}

// AddSeenBy records that p acknowledged the message. Idempotent: a
// repeated acknowledgement is not an error and causes no write.
func (s *Store) AddSeenBy(ctx context.Context, id int64, p model.Participant) (*model.Message, error) {
	message, err := s.repo.GetMessage(ctx, id)
	if err != nil {
		return nil, model.NewPersistenceError("failed to get message", err)
	}
	if message == nil {
		return nil, model.NewNotFoundError(fmt.Sprintf("message %d does not exist", id))
	}
	if !message.Conversation().Contains(p) {
		return nil, model.NewParticipantMismatchError(fmt.Sprintf("participant %s is not part of the conversation", p))
	}

	if message.SeenBy.Contains(p) {
		return message, nil
	}

	message.SeenBy = append(message.SeenBy, p)
	if err := s.repo.UpdateMessageSeenBy(ctx, id, message.SeenBy); err != nil {
		return nil, model.NewPersistenceError("failed to update seen_by", err)
	}

	return message, nil
}

// FetchPage returns up to limit messages strictly older than the
// cursor, ascending. One extra row is fetched to derive HasMore without
// a count query.
func (s *Store) FetchPage(ctx context.Context, conv model.Conversation, limit int, before *model.Cursor) (*Page, error) {
	limit = clampLimit(limit, defaultPageLimit, maxPageLimit)

	messages, err := s.repo.ListMessagesBefore(ctx, conv, before, uint64(limit)+1)
	if err != nil {
		return nil, model.NewPersistenceError("failed to list messages", err)
	}

	hasMore := len(messages) > limit
	if hasMore {
		messages = messages[:limit]
	}
	reverse(messages)

	return &Page{Messages: messages, HasMore: hasMore}, nil
}

// FetchAround returns a window centered on the pivot: up to limit/2
// older messages, the pivot, and the remaining slots filled with newer
// messages. The overflow flags come from boundary-tuple existence
// probes rather than counts, so they stay correct when rows are
// inserted concurrently with the fetch.
func (s *Store) FetchAround(ctx context.Context, conv model.Conversation, pivotID int64, limit int) (*Window, error) {
	limit = clampLimit(limit, defaultAroundLimit, maxAroundLimit)

	pivot, err := s.Get(ctx, conv, pivotID)
	if err != nil {
		return nil, err
	}
	pivotCursor := pivot.Cursor()

	half := limit / 2
	afterLimit := limit - half - 1 // one slot is reserved for the pivot

	var before model.MessageList
	if half > 0 {
		before, err = s.repo.ListMessagesBefore(ctx, conv, &pivotCursor, uint64(half))
		if err != nil {
			return nil, model.NewPersistenceError("failed to list messages before pivot", err)
		}
	}

	var after model.MessageList
	if afterLimit > 0 {
		after, err = s.repo.ListMessagesAfter(ctx, conv, pivotCursor, uint64(afterLimit))
		if err != nil {
			return nil, model.NewPersistenceError("failed to list messages after pivot", err)
		}
	}

	// Probe beyond the outermost fetched tuple; when a side came back
	// empty the pivot itself is the boundary.
	beforeBoundary := pivotCursor
	if len(before) > 0 {
		beforeBoundary = before[len(before)-1].Cursor()
	}
	hasMoreBefore, err := s.repo.HasMessageBefore(ctx, conv, beforeBoundary)
	if err != nil {
		return nil, model.NewPersistenceError("failed to probe messages before window", err)
	}

	afterBoundary := pivotCursor
	if len(after) > 0 {
		afterBoundary = after[len(after)-1].Cursor()
	}
	hasMoreAfter, err := s.repo.HasMessageAfter(ctx, conv, afterBoundary)
	if err != nil {
		return nil, model.NewPersistenceError("failed to probe messages after window", err)
	}

	reverse(before)
	messages := make(model.MessageList, 0, len(before)+1+len(after))
	messages = append(messages, before...)
	messages = append(messages, *pivot)
	messages = append(messages, after...)

	return &Window{
		Messages:      messages,
		HasMoreBefore: hasMoreBefore,
		HasMoreAfter:  hasMoreAfter,
	}, nil
}

func clampLimit(limit, def, max int) int {
	switch {
	case limit <= 0:
		return def
	case limit > max:
		return max
	default:
		return limit
	}
}

func reverse(messages model.MessageList) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
