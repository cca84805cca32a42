package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/lernora/conversation-service/internal/config"
	"github.com/lernora/conversation-service/internal/model"
)

type txKey string

const keyActiveTx = txKey("active_tx")

var messageColumns = []string{
	"id",
	"sender_id",
	"sender_role",
	"receiver_id",
	"receiver_role",
	"content",
	"reply_to",
	"seen_by",
	"reactions",
	"reaction_counts",
	"is_deleted",
	"deleted_by_id",
	"deleted_by_role",
	"deleted_at",
	"created_at",
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type database interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

// Chk returns the transaction bound to ctx by WithTx, or the pooled
// connection when no transaction is active.
func (r *Repository) Chk(ctx context.Context) database {
	if tx, ok := ctx.Value(keyActiveTx).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyActiveTx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// conversationFilter is the single place the unordered participant pair
// turns into SQL: both directions of the pair are matched so A→B and
// B→A rows form one conversation.
func conversationFilter(conv model.Conversation) sq.Sqlizer {
	a, b := conv.Participants()
	return sq.Or{
		sq.Eq{
			"sender_id":     a.ID,
			"sender_role":   a.Role,
			"receiver_id":   b.ID,
			"receiver_role": b.Role,
		},
		sq.Eq{
			"sender_id":     b.ID,
			"sender_role":   b.Role,
			"receiver_id":   a.ID,
			"receiver_role": a.Role,
		},
	}
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("sender_id", "sender_role", "receiver_id", "receiver_role", "content", "reply_to", "seen_by", "reactions", "reaction_counts").
		Values(
			message.SenderID,
			message.SenderRole,
			message.ReceiverID,
			message.ReceiverRole,
			message.Content,
			message.ReplyTo,
			message.SeenBy,
			message.Reactions,
			message.ReactionCounts,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).QueryRowxContext(ctx, query, args...).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// GetMessage returns (nil, nil) when the message does not exist; the
// service layer decides whether absence is an error.
func (r *Repository) GetMessage(ctx context.Context, id int64) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// ListMessagesBefore fetches up to limit messages strictly older than
// the cursor tuple (newest first). A nil cursor starts from the newest
// message. The row-value comparison keeps the page stable when many
// rows share a timestamp.
func (r *Repository) ListMessagesBefore(ctx context.Context, conv model.Conversation, before *model.Cursor, limit uint64) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(conversationFilter(conv)).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)

	if before != nil {
		queryBuilder = queryBuilder.Where(sq.Expr("(created_at, id) < (?, ?)", before.CreatedAt, before.ID))
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// ListMessagesAfter fetches up to limit messages strictly newer than
// the cursor tuple, oldest first.
func (r *Repository) ListMessagesAfter(ctx context.Context, conv model.Conversation, after model.Cursor, limit uint64) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(conversationFilter(conv)).
		Where(sq.Expr("(created_at, id) > (?, ?)", after.CreatedAt, after.ID)).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *Repository) HasMessageBefore(ctx context.Context, conv model.Conversation, cursor model.Cursor) (bool, error) {
	return r.hasMessageBeyond(ctx, conv, sq.Expr("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID))
}

func (r *Repository) HasMessageAfter(ctx context.Context, conv model.Conversation, cursor model.Cursor) (bool, error) {
	return r.hasMessageBeyond(ctx, conv, sq.Expr("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID))
}

func (r *Repository) hasMessageBeyond(ctx context.Context, conv model.Conversation, boundary sq.Sqlizer) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("messages").
		Where(conversationFilter(conv)).
		Where(boundary).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.Chk(ctx).GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to probe message boundary: %v", err)
	}

	return exists, nil
}

func (r *Repository) UpdateMessageReactions(ctx context.Context, id int64, reactions model.ReactionList, counts model.ReactionCounts) error {
	query, args, err := sq.Update("messages").
		Set("reactions", reactions).
		Set("reaction_counts", counts).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update reactions: %v", err)
	}

	return nil
}

func (r *Repository) UpdateMessageSeenBy(ctx context.Context, id int64, seenBy model.SeenBySet) error {
	query, args, err := sq.Update("messages").
		Set("seen_by", seenBy).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update seen_by: %v", err)
	}

	return nil
}

func (r *Repository) MarkMessageDeleted(ctx context.Context, id int64, by model.Participant, at time.Time) error {
	query, args, err := sq.Update("messages").
		Set("is_deleted", true).
		Set("deleted_by_id", by.ID).
		Set("deleted_by_role", by.Role).
		Set("deleted_at", at).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark message deleted: %v", err)
	}

	return nil
}

func (r *Repository) SaveReport(ctx context.Context, report *model.Report) error {
	query, args, err := sq.Insert("reports").
		Columns("message_id", "reporter_id", "reporter_role", "reason").
		Values(report.MessageID, report.ReporterID, report.ReporterRole, report.Reason).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).QueryRowxContext(ctx, query, args...).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save report: %v", err)
	}

	return nil
}

// GetUser returns the cached profile, or (nil, nil) when the databus
// has not delivered one for this id yet.
func (r *Repository) GetUser(ctx context.Context, id string) (*model.UserProfile, error) {
	query, args, err := sq.Select("id", "nickname", "avatar_url").
		From("users").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var profile model.UserProfile
	err = r.Chk(ctx).GetContext(ctx, &profile, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *Repository) UpsertUser(ctx context.Context, profile *model.UserProfile) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(profile.ID, profile.Nickname, profile.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("nickname", newNickname).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error {
	query, args, err := sq.Update("users").
		Set("avatar_url", avatarLink).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
