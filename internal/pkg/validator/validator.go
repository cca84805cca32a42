package validator

import (
	"fmt"
	"strings"

	"github.com/lernora/conversation-service/internal/model"
)

const maxContentRunes = 2000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return model.NewValidationError("content cannot be empty")
	}

	if len([]rune(content)) > maxContentRunes {
		return model.NewValidationError(fmt.Sprintf("content exceeds maximum length of %d characters", maxContentRunes))
	}

	return nil
}

func (v *Validator) ValidateReactionKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return model.NewValidationError("reaction kind cannot be empty")
	}

	return nil
}

// ValidateSubscribeChannel checks that a participant may subscribe to a
// channel before a subscribe token is issued: the shared presence
// channel, their own private channel, or a dialog they take part in.
func (v *Validator) ValidateSubscribeChannel(channel string, p model.Participant) error {
	if channel == model.PresenceChannel {
		return nil
	}

	if channel == model.PrivateChannel(p) {
		return nil
	}

	if rest, ok := strings.CutPrefix(channel, "dialog#"); ok {
		for _, id := range strings.Split(rest, ",") {
			if id == p.ID {
				return nil
			}
		}
		return model.NewAuthorizationError("participant is not a member of this dialog")
	}

	return model.NewAuthorizationError(fmt.Sprintf("subscription to channel %q is not allowed", channel))
}
