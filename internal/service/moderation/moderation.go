package moderation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lernora/conversation-service/internal/model"
)

// Service owns soft deletion and reporting. A message is never hard
// deleted: content stays in place behind the is_deleted flag.
type Service struct {
	repo DBRepo
}

func New(repo DBRepo) *Service {
	return &Service{repo: repo}
}

// SoftDelete flags the message as deleted. Only the sender may delete;
// a second delete is rejected so the audit trail of the first one is
// never overwritten.
func (s *Service) SoftDelete(ctx context.Context, messageID int64, requester model.Participant) (*model.Message, error) {
	message, err := s.repo.GetMessage(ctx, messageID)
	if err != nil {
		return nil, model.NewPersistenceError("failed to get message", err)
	}
	if message == nil {
		return nil, model.NewNotFoundError(fmt.Sprintf("message %d does not exist", messageID))
	}

	if !message.Sender().Equal(requester) {
		return nil, model.NewAuthorizationError("only the sender can delete a message")
	}

	if message.IsDeleted {
		return nil, model.NewValidationError(fmt.Sprintf("message %d is already deleted", messageID))
	}

	now := time.Now().UTC()
	if err := s.repo.MarkMessageDeleted(ctx, messageID, requester, now); err != nil {
		return nil, model.NewPersistenceError("failed to mark message deleted", err)
	}

	message.IsDeleted = true
	message.DeletedByID = &requester.ID
	role := requester.Role
	message.DeletedByRole = &role
	message.DeletedAt = &now

	return message, nil
}

// Report files a moderation report against a message. Duplicate reports
// from the same reporter are allowed; deduplication, if any, belongs to
// the moderation workflow that resolves them.
func (s *Service) Report(ctx context.Context, messageID int64, reporter model.Participant, reason string) (*model.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, model.NewValidationError("report reason cannot be empty")
	}

	message, err := s.repo.GetMessage(ctx, messageID)
	if err != nil {
		return nil, model.NewPersistenceError("failed to get message", err)
	}
	if message == nil {
		return nil, model.NewNotFoundError(fmt.Sprintf("message %d does not exist", messageID))
	}

	if message.Sender().Equal(reporter) {
		return nil, model.NewAuthorizationError("cannot report your own message")
	}

	report := &model.Report{
		MessageID:    messageID,
		ReporterID:   reporter.ID,
		ReporterRole: reporter.Role,
		Reason:       reason,
		Resolved:     false,
	}

	if err := s.repo.SaveReport(ctx, report); err != nil {
		return nil, model.NewPersistenceError("failed to save report", err)
	}

	return report, nil
}
