package model

import (
	"fmt"
	"strings"
)

// Role is the closed set of actors a conversation can contain.
type Role string

const (
	RoleLearner    Role = "learner"
	RoleInstructor Role = "instructor"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(s)) {
	case RoleLearner:
		return RoleLearner, nil
	case RoleInstructor:
		return RoleInstructor, nil
	default:
		return "", NewValidationError(fmt.Sprintf("unknown role %q", s))
	}
}

// Participant identifies one side of a conversation: an opaque platform
// id plus its role tag. Two participants with the same id but different
// roles are distinct actors.
type Participant struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (p Participant) Equal(other Participant) bool {
	return p.ID == other.ID && p.Role == other.Role
}

func (p Participant) String() string {
	return string(p.Role) + ":" + p.ID
}

// PrivateChannel is the per-participant delivery target, independent of
// any room membership. The role is part of the address so that a learner
// and an instructor sharing a platform id never share a channel.
func PrivateChannel(p Participant) string {
	switch p.Role {
	case RoleLearner:
		return "learner#" + p.ID
	case RoleInstructor:
		return "instructor#" + p.ID
	default:
		return "user#" + p.ID
	}
}

// Conversation is the unordered pair of participants implicitly defined
// by the messages exchanged between them. It is a value, not a stored
// entity; construction normalizes the pair so A/B and B/A compare equal.
type Conversation struct {
	a Participant
	b Participant
}

func NewConversation(x, y Participant) Conversation {
	if y.ID < x.ID || (y.ID == x.ID && y.Role < x.Role) {
		x, y = y, x
	}
	return Conversation{a: x, b: y}
}

func (c Conversation) Participants() (Participant, Participant) {
	return c.a, c.b
}

func (c Conversation) Contains(p Participant) bool {
	return c.a.Equal(p) || c.b.Equal(p)
}

func (c Conversation) Other(p Participant) (Participant, bool) {
	switch {
	case c.a.Equal(p):
		return c.b, true
	case c.b.Equal(p):
		return c.a, true
	default:
		return Participant{}, false
	}
}

func (c Conversation) Equal(other Conversation) bool {
	return c.a.Equal(other.a) && c.b.Equal(other.b)
}

// Channel is the shared room channel for the pair. Centrifugo treats the
// part after '#' as the allowed user list, so both participants (and
// nobody else) can subscribe.
func (c Conversation) Channel() string {
	if c.a.ID == c.b.ID {
		return "dialog#" + c.a.ID
	}
	return "dialog#" + c.a.ID + "," + c.b.ID
}
