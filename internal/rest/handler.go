package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lernora/conversation-service/internal/config"
	"github.com/lernora/conversation-service/internal/model"
	"github.com/lernora/conversation-service/internal/pkg/tx"
	"github.com/lernora/conversation-service/internal/service/realtime"
)

type Handler struct {
	store        ConversationStore
	moderation   ModerationService
	dispatcher   Dispatcher
	validator    Validator
	jwtGenerator JWTGenerator
	profiles     ProfileProvider
}

func New(
	store ConversationStore,
	moderation ModerationService,
	dispatcher Dispatcher,
	validator Validator,
	jwtGenerator JWTGenerator,
	profiles ProfileProvider,
) *Handler {
	return &Handler{
		store:        store,
		moderation:   moderation,
		dispatcher:   dispatcher,
		validator:    validator,
		jwtGenerator: jwtGenerator,
		profiles:     profiles,
	}
}

// AttachAPIRoutes mounts the gateway-facing API. Middleware (auth,
// logger, tx) is applied by the caller.
func (h *Handler) AttachAPIRoutes(r chi.Router) {
	r.Get("/conversation/{peerRole}/{peerId}/messages", h.GetConversationMessages)
	r.Get("/conversation/{peerRole}/{peerId}/messages/around/{messageId}", h.GetConversationMessagesAround)
	r.Post("/messages/{messageId}/report", h.ReportMessage)
	r.Get("/realtime/connect-token", h.GetConnectToken)
	r.Get("/realtime/subscribe-token", h.GetSubscribeToken)
}

// AttachProxyRoutes mounts the Centrifugo proxy surface.
func (h *Handler) AttachProxyRoutes(r chi.Router) {
	r.Post("/connect", h.CentrifugoConnect)
	r.Post("/disconnect", h.CentrifugoDisconnect)
	r.Post("/rpc", h.CentrifugoRPC)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	requester, ok := requesterFromContext(r)
	if !ok {
		logger.Error("failed to get requester identity")
		h.writeError(w, "failed to get requester identity", http.StatusInternalServerError)
		return
	}

	peer, err := peerFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid peer reference: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := parseIntQuery(r, "limit")

	before, err := beforeCursorFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid cursor: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.store.FetchPage(r.Context(), model.NewConversation(requester, peer), limit, before)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch page: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, MessagesPageResponse{
		Messages: page.Messages,
		HasMore:  page.HasMore,
		Peer:     h.peerProfile(r.Context(), peer),
	}, http.StatusOK)
}

func (h *Handler) GetConversationMessagesAround(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessagesAround")

	requester, ok := requesterFromContext(r)
	if !ok {
		logger.Error("failed to get requester identity")
		h.writeError(w, "failed to get requester identity", http.StatusInternalServerError)
		return
	}

	peer, err := peerFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid peer reference: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pivotID, err := strconv.ParseInt(chi.URLParam(r, "messageId"), 10, 64)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	limit := parseIntQuery(r, "limit")

	window, err := h.store.FetchAround(r.Context(), model.NewConversation(requester, peer), pivotID, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch window: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, MessagesAroundResponse{
		Messages:      window.Messages,
		HasMoreBefore: window.HasMoreBefore,
		HasMoreAfter:  window.HasMoreAfter,
		Peer:          h.peerProfile(r.Context(), peer),
	}, http.StatusOK)
}

func (h *Handler) ReportMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ReportMessage")

	requester, ok := requesterFromContext(r)
	if !ok {
		logger.Error("failed to get requester identity")
		h.writeError(w, "failed to get requester identity", http.StatusInternalServerError)
		return
	}

	messageID, err := strconv.ParseInt(chi.URLParam(r, "messageId"), 10, 64)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var report *model.Report
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		report, err = h.moderation.Report(ctx, messageID, requester, req.Reason)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to report message: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, report, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	requester, ok := requesterFromContext(r)
	if !ok {
		logger.Error("failed to get requester identity")
		h.writeError(w, "failed to get requester identity", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(requester.ID, requester.Role)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, "failed to generate connect token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, ConnectTokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	requester, ok := requesterFromContext(r)
	if !ok {
		logger.Error("failed to get requester identity")
		h.writeError(w, "failed to get requester identity", http.StatusInternalServerError)
		return
	}

	channel := r.URL.Query().Get("channel")
	if channel == "" {
		h.writeError(w, "channel is required", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSubscribeChannel(channel, requester); err != nil {
		logger.Error(fmt.Sprintf("subscription to %s rejected: %v", channel, err))
		h.writeDomainError(w, err)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(requester.ID, requester.Role, channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, "failed to generate subscribe token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, SubscribeTokenResponse{Token: token, ExpiresAt: expiresAt, Channel: channel}, http.StatusOK)
}

// CentrifugoConnect authenticates a new realtime connection. The client
// passes its connect token in the connection data; on success the
// connection is bound to the participant and presence is updated.
func (h *Handler) CentrifugoConnect(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CentrifugoConnect")

	var req ConnectProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode connect proxy request: %v", err))
		h.writeProxyError(w, 4000, "invalid request body")
		return
	}

	var data ConnectProxyData
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &data); err != nil {
			logger.Error(fmt.Sprintf("failed to decode connect data: %v", err))
			h.writeProxyError(w, 4000, "invalid connect data")
			return
		}
	}

	claims, err := h.jwtGenerator.ValidateConnectToken(data.Token)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid connect token: %v", err))
		h.writeProxyError(w, 4001, "invalid connect token")
		return
	}

	participant := model.Participant{ID: claims.Subject, Role: claims.Role}
	if err := h.dispatcher.Identify(r.Context(), req.Client, participant); err != nil {
		logger.Error(fmt.Sprintf("failed to identify connection: %v", err))
		h.writeProxyError(w, 4500, "failed to identify connection")
		return
	}

	h.writeJSON(w, ProxyResponse{Result: ConnectProxyResult{User: participant.ID}}, http.StatusOK)
}

func (h *Handler) CentrifugoDisconnect(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CentrifugoDisconnect")

	var req DisconnectProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode disconnect proxy request: %v", err))
		h.writeProxyError(w, 4000, "invalid request body")
		return
	}

	if err := h.dispatcher.Disconnect(r.Context(), req.Client); err != nil {
		logger.Error(fmt.Sprintf("failed to disconnect %s: %v", req.Client, err))
	}

	h.writeJSON(w, ProxyResponse{Result: struct{}{}}, http.StatusOK)
}

// CentrifugoRPC routes a realtime operation to the dispatcher. The
// reply is always HTTP 200 with a structured {ok, ...} body; domain
// failures never surface as proxy faults.
func (h *Handler) CentrifugoRPC(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CentrifugoRPC")

	var req RPCProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode rpc proxy request: %v", err))
		h.writeProxyError(w, 4000, "invalid request body")
		return
	}

	actor, ok := h.dispatcher.Resolve(req.Client)
	if !ok {
		h.writeRPCReply(w, RPCReply{Ok: false, Reason: "connection is not identified", Kind: model.KindAuthorization})
		return
	}

	// A failed reply surfaces as an error here so the surrounding
	// transaction rolls back partial writes; the reply already carries
	// the structured reason. A commit failure after a successful
	// callback must fail the reply too, or the client gets an ack for a
	// write that was rolled back.
	var reply RPCReply
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		reply = h.dispatchRPC(ctx, req, actor)
		if !reply.Ok {
			return errors.New(reply.Reason)
		}
		return nil
	})
	if err != nil && reply.Ok {
		logger.Error(fmt.Sprintf("failed to commit %s: %v", req.Method, err))
		reply = RPCReply{Ok: false, Reason: "failed to commit operation", Kind: model.KindPersistence}
	}
	h.writeRPCReply(w, reply)
}

func (h *Handler) dispatchRPC(ctx context.Context, req RPCProxyRequest, actor model.Participant) RPCReply {
	switch req.Method {
	case RPCMethodSend:
		var params SendParams
		if err := json.Unmarshal(req.Data, &params); err != nil {
			return rpcFailure(model.NewValidationError("invalid send params"))
		}
		receiverRole, err := model.ParseRole(params.ReceiverRole)
		if err != nil {
			return rpcFailure(err)
		}
		ack, err := h.dispatcher.Send(ctx, realtime.SendRequest{
			Sender:           actor,
			Receiver:         model.Participant{ID: params.ReceiverID, Role: receiverRole},
			Content:          params.Content,
			Room:             params.Room,
			ReplyTo:          params.ReplyTo,
			CorrelationToken: params.CorrelationToken,
			ClientID:         req.Client,
		})
		if err != nil {
			return rpcFailure(err)
		}
		return RPCReply{Ok: true, Payload: ack}

	case RPCMethodTyping:
		var params TypingParams
		if err := json.Unmarshal(req.Data, &params); err != nil {
			return rpcFailure(model.NewValidationError("invalid typing params"))
		}
		typingReq := realtime.TypingRequest{
			Actor:    actor,
			IsTyping: params.IsTyping,
			Room:     params.Room,
		}
		if params.ReceiverID != "" {
			receiverRole, err := model.ParseRole(params.ReceiverRole)
			if err != nil {
				return rpcFailure(err)
			}
			typingReq.Receiver = &model.Participant{ID: params.ReceiverID, Role: receiverRole}
		}
		if err := h.dispatcher.Typing(ctx, typingReq); err != nil {
			return rpcFailure(err)
		}
		return RPCReply{Ok: true}

	case RPCMethodMarkSeen:
		var params SeenParams
		if err := json.Unmarshal(req.Data, &params); err != nil {
			return rpcFailure(model.NewValidationError("invalid markSeen params"))
		}
		message, err := h.dispatcher.MarkSeen(ctx, realtime.SeenRequest{Actor: actor, MessageID: params.MessageID})
		if err != nil {
			return rpcFailure(err)
		}
		return RPCReply{Ok: true, Payload: message}

	case RPCMethodReact:
		var params ReactParams
		if err := json.Unmarshal(req.Data, &params); err != nil {
			return rpcFailure(model.NewValidationError("invalid react params"))
		}
		state, err := h.dispatcher.React(ctx, realtime.ReactRequest{
			Actor:     actor,
			MessageID: params.MessageID,
			Kind:      params.Kind,
			Toggle:    params.Toggle,
		})
		if err != nil {
			return rpcFailure(err)
		}
		return RPCReply{Ok: true, Payload: ReactionReply{
			MessageID:      state.Message.ID,
			ReactionCounts: state.ReactionCounts,
			UserReaction:   state.UserReaction,
		}}

	case RPCMethodUnreact:
		var params UnreactParams
		if err := json.Unmarshal(req.Data, &params); err != nil {
			return rpcFailure(model.NewValidationError("invalid unreact params"))
		}
		state, err := h.dispatcher.Unreact(ctx, realtime.UnreactRequest{Actor: actor, MessageID: params.MessageID})
		if err != nil {
			return rpcFailure(err)
		}
		return RPCReply{Ok: true, Payload: ReactionReply{
			MessageID:      state.Message.ID,
			ReactionCounts: state.ReactionCounts,
			UserReaction:   state.UserReaction,
		}}

	case RPCMethodDelete:
		var params DeleteParams
		if err := json.Unmarshal(req.Data, &params); err != nil {
			return rpcFailure(model.NewValidationError("invalid delete params"))
		}
		message, err := h.dispatcher.Delete(ctx, realtime.DeleteRequest{Actor: actor, MessageID: params.MessageID})
		if err != nil {
			return rpcFailure(err)
		}
		return RPCReply{Ok: true, Payload: message}

	default:
		return RPCReply{Ok: false, Reason: fmt.Sprintf("unknown method %q", req.Method), Kind: model.KindValidation}
	}
}

// peerProfile resolves the peer's cached profile for response
// decoration. A cache miss or read failure only costs the decoration,
// never the history itself.
func (h *Handler) peerProfile(ctx context.Context, peer model.Participant) *PeerProfile {
	out := &PeerProfile{ID: peer.ID, Role: peer.Role}

	profile, err := h.profiles.GetUser(ctx, peer.ID)
	if err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to get profile for %s: %v", peer.ID, err))
		return out
	}
	if profile != nil {
		out.Nickname = profile.Nickname
		out.AvatarURL = profile.AvatarURL
	}

	return out
}

// ----------------------------- helpers -----------------------------

func requesterFromContext(r *http.Request) (model.Participant, bool) {
	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		return model.Participant{}, false
	}
	role, ok := r.Context().Value(config.KeyRole).(model.Role)
	if !ok {
		return model.Participant{}, false
	}
	return model.Participant{ID: userUUID, Role: role}, true
}

func peerFromRequest(r *http.Request) (model.Participant, error) {
	role, err := model.ParseRole(chi.URLParam(r, "peerRole"))
	if err != nil {
		return model.Participant{}, err
	}

	peerID := chi.URLParam(r, "peerId")
	if peerID == "" {
		return model.Participant{}, model.NewValidationError("peer id is required")
	}

	return model.Participant{ID: peerID, Role: role}, nil
}

// beforeCursorFromRequest reads the pagination cursor. With only a
// timestamp the cursor excludes every message at that instant, which
// matches "strictly older than"; with an id the exact tuple is used.
func beforeCursorFromRequest(r *http.Request) (*model.Cursor, error) {
	beforeTS := r.URL.Query().Get("before_ts")
	if beforeTS == "" {
		return nil, nil
	}

	ts, err := time.Parse(time.RFC3339Nano, beforeTS)
	if err != nil {
		return nil, model.NewValidationError("before_ts must be an RFC3339 timestamp")
	}

	cursor := &model.Cursor{CreatedAt: ts}
	if beforeID := r.URL.Query().Get("before_id"); beforeID != "" {
		id, err := strconv.ParseInt(beforeID, 10, 64)
		if err != nil {
			return nil, model.NewValidationError("before_id must be an integer")
		}
		cursor.ID = id
	}

	return cursor, nil
}

func parseIntQuery(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func rpcFailure(err error) RPCReply {
	return RPCReply{Ok: false, Reason: err.Error(), Kind: model.KindOf(err)}
}

func statusForKind(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindAuthorization:
		return http.StatusForbidden
	case model.KindParticipantMismatch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	h.writeError(w, err.Error(), statusForKind(model.KindOf(err)))
}

func (h *Handler) writeRPCReply(w http.ResponseWriter, reply RPCReply) {
	h.writeJSON(w, ProxyResponse{Result: RPCResult{Data: reply}}, http.StatusOK)
}

func (h *Handler) writeProxyError(w http.ResponseWriter, code uint32, message string) {
	h.writeJSON(w, ProxyResponse{Error: &ProxyError{Code: code, Message: message}}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
