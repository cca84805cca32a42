package realtime

import (
	"context"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lernora/conversation-service/internal/config"
	"github.com/lernora/conversation-service/internal/model"
	"github.com/lernora/conversation-service/internal/service/reaction"
)

// Dispatcher is the event-driven façade over the store, the reaction
// ledger, moderation and presence. Every handler takes an immutable
// request value, delegates persistence, and then performs the fan-out
// itself; no handler mutates shared state inline.
//
// A fan-out failure after a successful write is logged and swallowed:
// the write is the source of truth and is never rolled back.
type Dispatcher struct {
	store      ConversationStore
	ledger     ReactionLedger
	moderation ModerationService
	presence   PresenceRegistry
	publisher  Publisher
	validator  Validator

	mu    sync.Mutex
	conns map[string]model.Participant
}

func New(
	store ConversationStore,
	ledger ReactionLedger,
	moderation ModerationService,
	presenceRegistry PresenceRegistry,
	publisher Publisher,
	validator Validator,
) *Dispatcher {
	return &Dispatcher{
		store:      store,
		ledger:     ledger,
		moderation: moderation,
		presence:   presenceRegistry,
		publisher:  publisher,
		validator:  validator,
		conns:      make(map[string]model.Participant),
	}
}

type SendRequest struct {
	Sender           model.Participant
	Receiver         model.Participant
	Content          string
	Room             string
	ReplyTo          *int64
	CorrelationToken string
	// ClientID is the sending connection; echoed in the room payload so
	// that connection can drop its own message.
	ClientID string
}

// SendAck carries the stored message back to the caller together with
// the client-supplied correlation token, so an optimistic local message
// can be reconciled against the durable one.
type SendAck struct {
	Message          *model.Message `json:"message"`
	CorrelationToken string         `json:"correlation_token,omitempty"`
}

type TypingRequest struct {
	Actor    model.Participant
	IsTyping bool
	Room     string
	Receiver *model.Participant
}

type SeenRequest struct {
	Actor     model.Participant
	MessageID int64
}

type ReactRequest struct {
	Actor     model.Participant
	MessageID int64
	Kind      string
	Toggle    bool
}

type UnreactRequest struct {
	Actor     model.Participant
	MessageID int64
}

type DeleteRequest struct {
	Actor     model.Participant
	MessageID int64
}

// Identify binds a transport connection to a participant. It must
// precede any other event on that connection. The online transition is
// published only when the participant was not already online through
// another connection.
func (d *Dispatcher) Identify(ctx context.Context, clientID string, p model.Participant) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Identify")

	d.mu.Lock()
	d.conns[clientID] = p
	d.mu.Unlock()

	changed, err := d.presence.MarkOnline(ctx, p)
	if err != nil {
		return model.NewPersistenceError("failed to mark participant online", err)
	}

	if changed {
		d.fanOut(ctx, []string{model.PresenceChannel}, model.RealtimeEvent{
			Event:   model.EventPresenceOnline,
			Payload: model.PresencePayload{Participant: p},
		})
	}

	return nil
}

// Disconnect unbinds a connection. The participant goes offline only
// when their last bound connection is gone, so a second device keeps
// them online.
func (d *Dispatcher) Disconnect(ctx context.Context, clientID string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Disconnect")

	d.mu.Lock()
	p, ok := d.conns[clientID]
	if !ok {
		d.mu.Unlock()
		return nil
	}
	delete(d.conns, clientID)

	remaining := 0
	for _, other := range d.conns {
		if other.Equal(p) {
			remaining++
		}
	}
	d.mu.Unlock()

	if remaining > 0 {
		return nil
	}

	changed, err := d.presence.MarkOffline(ctx, p)
	if err != nil {
		return model.NewPersistenceError("failed to mark participant offline", err)
	}

	if changed {
		d.fanOut(ctx, []string{model.PresenceChannel}, model.RealtimeEvent{
			Event:   model.EventPresenceOffline,
			Payload: model.PresencePayload{Participant: p},
		})
	}

	return nil
}

// Resolve returns the participant bound to a connection by Identify.
func (d *Dispatcher) Resolve(clientID string) (model.Participant, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.conns[clientID]
	return p, ok
}

// Send validates, persists and fans out a new message. The sender is
// recorded as having seen their own message. Delivery goes to the room
// channel (when the client is in one) and always to the receiver's
// private channel, so every device of the receiver gets it regardless
// of room membership.
func (d *Dispatcher) Send(ctx context.Context, req SendRequest) (*SendAck, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Send")

	if err := d.validator.ValidateContent(req.Content); err != nil {
		return nil, err
	}

	if req.Sender.Equal(req.Receiver) {
		return nil, model.NewValidationError("sender and receiver must be distinct participants")
	}

	message := &model.Message{
		SenderID:       req.Sender.ID,
		SenderRole:     req.Sender.Role,
		ReceiverID:     req.Receiver.ID,
		ReceiverRole:   req.Receiver.Role,
		Content:        req.Content,
		ReplyTo:        req.ReplyTo,
		SeenBy:         model.SeenBySet{req.Sender},
		Reactions:      model.ReactionList{},
		ReactionCounts: model.ReactionCounts{},
	}

	stored, err := d.store.Append(ctx, message)
	if err != nil {
		return nil, err
	}

	event := model.RealtimeEvent{
		Event: model.EventNewMessage,
		Payload: model.NewMessagePayload{
			Message: stored,
			Client:  req.ClientID,
		},
	}

	channels := []string{model.PrivateChannel(req.Receiver)}
	if req.Room != "" {
		channels = append(channels, req.Room)
	}
	d.fanOut(ctx, channels, event)

	return &SendAck{Message: stored, CorrelationToken: req.CorrelationToken}, nil
}

// Typing is ephemeral: nothing is persisted and the event goes to
// exactly one destination. With neither a room nor a receiver it is
// dropped with a log line, not an error.
func (d *Dispatcher) Typing(ctx context.Context, req TypingRequest) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Typing")

	event := model.RealtimeEvent{
		Event: model.EventTyping,
		Payload: model.TypingPayload{
			From:     req.Actor,
			IsTyping: req.IsTyping,
		},
	}

	switch {
	case req.Room != "":
		d.fanOut(ctx, []string{req.Room}, event)
	case req.Receiver != nil:
		d.fanOut(ctx, []string{model.PrivateChannel(*req.Receiver)}, event)
	default:
		logger.Warn(fmt.Sprintf("typing event from %s dropped: no destination", req.Actor))
	}

	return nil
}

// MarkSeen records the acknowledgement and notifies both participants'
// private channels.
func (d *Dispatcher) MarkSeen(ctx context.Context, req SeenRequest) (*model.Message, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("MarkSeen")

	message, err := d.store.AddSeenBy(ctx, req.MessageID, req.Actor)
	if err != nil {
		return nil, err
	}

	d.fanOut(ctx, participantChannels(message), model.RealtimeEvent{
		Event: model.EventMessageSeen,
		Payload: model.MessageSeenPayload{
			MessageID: message.ID,
			SeenBy:    req.Actor,
		},
	})

	return message, nil
}

// React upserts the actor's reaction and fans the updated counts out to
// both participants. The channels are resolved from the stored message,
// not from the caller, so routing is correct regardless of who reacted.
func (d *Dispatcher) React(ctx context.Context, req ReactRequest) (*reaction.State, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("React")

	if err := d.validator.ValidateReactionKind(req.Kind); err != nil {
		return nil, err
	}

	state, err := d.ledger.Upsert(ctx, req.MessageID, req.Actor, req.Kind, req.Toggle)
	if err != nil {
		return nil, err
	}

	d.fanOutReaction(ctx, state)

	return state, nil
}

func (d *Dispatcher) Unreact(ctx context.Context, req UnreactRequest) (*reaction.State, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Unreact")

	state, err := d.ledger.Remove(ctx, req.MessageID, req.Actor)
	if err != nil {
		return nil, err
	}

	d.fanOutReaction(ctx, state)

	return state, nil
}

// Delete soft-deletes through moderation and notifies both private
// channels.
func (d *Dispatcher) Delete(ctx context.Context, req DeleteRequest) (*model.Message, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Delete")

	message, err := d.moderation.SoftDelete(ctx, req.MessageID, req.Actor)
	if err != nil {
		return nil, err
	}

	d.fanOut(ctx, participantChannels(message), model.RealtimeEvent{
		Event: model.EventMessageDeleted,
		Payload: model.MessageDeletedPayload{
			MessageID: message.ID,
			IsDeleted: true,
			DeletedBy: req.Actor,
		},
	})

	return message, nil
}

func (d *Dispatcher) fanOutReaction(ctx context.Context, state *reaction.State) {
	d.fanOut(ctx, participantChannels(state.Message), model.RealtimeEvent{
		Event: model.EventMessageReactionUpdated,
		Payload: model.ReactionUpdatedPayload{
			MessageID:      state.Message.ID,
			ReactionCounts: state.ReactionCounts,
			UserReaction:   state.UserReaction,
		},
	})
}

func (d *Dispatcher) fanOut(ctx context.Context, channels []string, event model.RealtimeEvent) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for _, channel := range channels {
		if err := d.publisher.Publish(ctx, channel, event); err != nil {
			logger.Error(fmt.Sprintf("failed to publish %s to %s: %v", event.Event, channel, err))
		}
	}
}

func participantChannels(message *model.Message) []string {
	return []string{
		model.PrivateChannel(message.Sender()),
		model.PrivateChannel(message.Receiver()),
	}
}
