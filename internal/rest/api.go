package rest

import (
	"encoding/json"

	"github.com/lernora/conversation-service/internal/model"
)

type Error struct {
	Error string `json:"error"`
}

// PeerProfile decorates history responses with the cached platform
// profile of the other side of the conversation.
type PeerProfile struct {
	ID        string     `json:"id"`
	Role      model.Role `json:"role"`
	Nickname  string     `json:"nickname,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
}

type MessagesPageResponse struct {
	Messages model.MessageList `json:"messages"`
	HasMore  bool              `json:"has_more"`
	Peer     *PeerProfile      `json:"peer,omitempty"`
}

type MessagesAroundResponse struct {
	Messages      model.MessageList `json:"messages"`
	HasMoreBefore bool              `json:"has_more_before"`
	HasMoreAfter  bool              `json:"has_more_after"`
	Peer          *PeerProfile      `json:"peer,omitempty"`
}

type ReportRequest struct {
	Reason string `json:"reason"`
}

type ConnectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type SubscribeTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel"`
}

// Centrifugo proxy envelopes. The proxy contract is: HTTP 200 always,
// with either a result or a proxy-level error object in the body.

type ConnectProxyRequest struct {
	Client    string          `json:"client"`
	Transport string          `json:"transport"`
	Protocol  string          `json:"protocol"`
	Data      json.RawMessage `json:"data"`
}

type ConnectProxyData struct {
	Token string `json:"token"`
}

type ConnectProxyResult struct {
	User string `json:"user"`
}

type DisconnectProxyRequest struct {
	Client string `json:"client"`
	User   string `json:"user"`
}

type RPCProxyRequest struct {
	Client string          `json:"client"`
	User   string          `json:"user"`
	Method string          `json:"method"`
	Data   json.RawMessage `json:"data"`
}

type ProxyError struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

type ProxyResponse struct {
	Result interface{} `json:"result,omitempty"`
	Error  *ProxyError `json:"error,omitempty"`
}

type RPCResult struct {
	Data RPCReply `json:"data"`
}

// RPCReply is the structured reply for every realtime operation:
// either a success payload or a terminal {ok:false, reason} — handler
// errors never become transport faults.
type RPCReply struct {
	Ok      bool            `json:"ok"`
	Payload interface{}     `json:"payload,omitempty"`
	Reason  string          `json:"reason,omitempty"`
	Kind    model.ErrorKind `json:"kind,omitempty"`
}

// RPC method names accepted on the realtime channel.
const (
	RPCMethodSend     = "send"
	RPCMethodTyping   = "typing"
	RPCMethodMarkSeen = "markSeen"
	RPCMethodReact    = "react"
	RPCMethodUnreact  = "unreact"
	RPCMethodDelete   = "delete"
)

type SendParams struct {
	ReceiverID       string `json:"receiver_id"`
	ReceiverRole     string `json:"receiver_role"`
	Content          string `json:"content"`
	Room             string `json:"room,omitempty"`
	ReplyTo          *int64 `json:"reply_to,omitempty"`
	CorrelationToken string `json:"correlation_token,omitempty"`
}

type TypingParams struct {
	IsTyping     bool   `json:"is_typing"`
	Room         string `json:"room,omitempty"`
	ReceiverID   string `json:"receiver_id,omitempty"`
	ReceiverRole string `json:"receiver_role,omitempty"`
}

type SeenParams struct {
	MessageID int64 `json:"message_id"`
}

type ReactParams struct {
	MessageID int64  `json:"message_id"`
	Kind      string `json:"kind"`
	Toggle    bool   `json:"toggle,omitempty"`
}

type UnreactParams struct {
	MessageID int64 `json:"message_id"`
}

type DeleteParams struct {
	MessageID int64 `json:"message_id"`
}

type ReactionReply struct {
	MessageID      int64                `json:"message_id"`
	ReactionCounts model.ReactionCounts `json:"reaction_counts"`
	UserReaction   *model.Reaction      `json:"user_reaction,omitempty"`
}
