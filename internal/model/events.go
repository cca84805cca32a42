package model

// Realtime event names fanned out to Centrifugo channels.
const (
	EventNewMessage             = "newMessage"
	EventMessageSeen            = "messageSeen"
	EventMessageReactionUpdated = "messageReactionUpdated"
	EventMessageDeleted         = "messageDeleted"
	EventPresenceOnline         = "presenceOnline"
	EventPresenceOffline        = "presenceOffline"
	EventTyping                 = "typing"
)

// PresenceChannel carries online/offline transitions for every
// connected client that cares to render presence badges.
const PresenceChannel = "presence"

// RealtimeEvent is the envelope published into a channel.
type RealtimeEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type NewMessagePayload struct {
	Message *Message `json:"message"`
	// Client is the Centrifugo client id of the sending connection so
	// that the sender's own room subscription can drop the echo.
	Client string `json:"client,omitempty"`
}

type MessageSeenPayload struct {
	MessageID int64       `json:"message_id"`
	SeenBy    Participant `json:"seen_by"`
}

type ReactionUpdatedPayload struct {
	MessageID      int64          `json:"message_id"`
	ReactionCounts ReactionCounts `json:"reaction_counts"`
	UserReaction   *Reaction      `json:"user_reaction,omitempty"`
}

type MessageDeletedPayload struct {
	MessageID int64       `json:"message_id"`
	IsDeleted bool        `json:"is_deleted"`
	DeletedBy Participant `json:"deleted_by"`
}

type PresencePayload struct {
	Participant Participant `json:"participant"`
}

type TypingPayload struct {
	From     Participant `json:"from"`
	IsTyping bool        `json:"is_typing"`
}
