package reaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/lernora/conversation-service/internal/model"
)

// Ledger maintains at most one reaction per participant per message.
//
// Each operation is a read-then-write over the message's reaction list
// and is not wrapped in a cross-record transaction: two concurrent
// upserts on the same message can race and one can be lost. The failure
// mode is a transient undercount that self-corrects on the next
// interaction; message content and existence are never affected.
type Ledger struct {
	repo DBRepo
}

func New(repo DBRepo) *Ledger {
	return &Ledger{repo: repo}
}

// State is the reaction state of one message after an operation, plus
// the message itself so callers can address its participants.
type State struct {
	Message        *model.Message
	ReactionCounts model.ReactionCounts
	UserReaction   *model.Reaction
}

// Upsert applies p's reaction of the given kind. With toggle set, a
// repeat of the participant's current kind removes the reaction instead
// of being a no-op. A different kind always replaces the current one.
func (l *Ledger) Upsert(ctx context.Context, messageID int64, p model.Participant, kind string, toggle bool) (*State, error) {
	if strings.TrimSpace(kind) == "" {
		return nil, model.NewValidationError("reaction kind cannot be empty")
	}

	message, err := l.resolve(ctx, messageID, p)
	if err != nil {
		return nil, err
	}

	reactions := message.Reactions
	idx := reactions.IndexOf(p)

	switch {
	case idx < 0:
		reactions = append(reactions, model.Reaction{ParticipantID: p.ID, Role: p.Role, Kind: kind})
	case reactions[idx].Kind == kind && !toggle:
		// Idempotent repeat: return current state without a write.
		return l.state(message, reactions, p), nil
	case reactions[idx].Kind == kind:
		reactions = append(reactions[:idx], reactions[idx+1:]...)
	default:
		reactions[idx].Kind = kind
	}

	return l.write(ctx, message, reactions, p)
}

// Remove drops p's reaction if present. Absence is a no-op, not an
// error.
func (l *Ledger) Remove(ctx context.Context, messageID int64, p model.Participant) (*State, error) {
	message, err := l.resolve(ctx, messageID, p)
	if err != nil {
		return nil, err
	}

	reactions := message.Reactions
	idx := reactions.IndexOf(p)
	if idx < 0 {
		return l.state(message, reactions, p), nil
	}

	reactions = append(reactions[:idx], reactions[idx+1:]...)

	return l.write(ctx, message, reactions, p)
}

func (l *Ledger) resolve(ctx context.Context, messageID int64, p model.Participant) (*model.Message, error) {
	message, err := l.repo.GetMessage(ctx, messageID)
	if err != nil {
		return nil, model.NewPersistenceError("failed to get message", err)
	}
	if message == nil {
		return nil, model.NewNotFoundError(fmt.Sprintf("message %d does not exist", messageID))
	}
	if !message.Conversation().Contains(p) {
		return nil, model.NewParticipantMismatchError(fmt.Sprintf("participant %s is not part of the conversation", p))
	}
	return message, nil
}

func (l *Ledger) write(ctx context.Context, message *model.Message, reactions model.ReactionList, p model.Participant) (*State, error) {
	counts := reactions.Counts()
	if err := l.repo.UpdateMessageReactions(ctx, message.ID, reactions, counts); err != nil {
		return nil, model.NewPersistenceError("failed to update reactions", err)
	}

	message.Reactions = reactions
	message.ReactionCounts = counts

	return l.state(message, reactions, p), nil
}

func (l *Ledger) state(message *model.Message, reactions model.ReactionList, p model.Participant) *State {
	state := &State{
		Message:        message,
		ReactionCounts: reactions.Counts(),
	}
	if idx := reactions.IndexOf(p); idx >= 0 {
		r := reactions[idx]
		state.UserReaction = &r
	}
	return state
}
