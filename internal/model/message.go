package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type MessageList []Message

type Message struct {
	ID             int64          `db:"id" json:"id"`
	SenderID       string         `db:"sender_id" json:"sender_id"`
	SenderRole     Role           `db:"sender_role" json:"sender_role"`
	ReceiverID     string         `db:"receiver_id" json:"receiver_id"`
	ReceiverRole   Role           `db:"receiver_role" json:"receiver_role"`
	Content        string         `db:"content" json:"content"`
	ReplyTo        *int64         `db:"reply_to" json:"reply_to,omitempty"`
	SeenBy         SeenBySet      `db:"seen_by" json:"seen_by"`
	Reactions      ReactionList   `db:"reactions" json:"reactions"`
	ReactionCounts ReactionCounts `db:"reaction_counts" json:"reaction_counts"`
	IsDeleted      bool           `db:"is_deleted" json:"is_deleted"`
	DeletedByID    *string        `db:"deleted_by_id" json:"deleted_by_id,omitempty"`
	DeletedByRole  *Role          `db:"deleted_by_role" json:"deleted_by_role,omitempty"`
	DeletedAt      *time.Time     `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

func (m *Message) Sender() Participant {
	return Participant{ID: m.SenderID, Role: m.SenderRole}
}

func (m *Message) Receiver() Participant {
	return Participant{ID: m.ReceiverID, Role: m.ReceiverRole}
}

func (m *Message) Conversation() Conversation {
	return NewConversation(m.Sender(), m.Receiver())
}

func (m *Message) Cursor() Cursor {
	return Cursor{CreatedAt: m.CreatedAt, ID: m.ID}
}

// Cursor is a position in the canonical message order. The pair
// (CreatedAt, ID) forms a total order: ID is the deterministic
// tie-breaker when timestamps collide, so pagination never skips or
// duplicates a message under concurrent inserts.
type Cursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        int64     `json:"id"`
}

func (c Cursor) Before(other Cursor) bool {
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.Before(other.CreatedAt)
	}
	return c.ID < other.ID
}

// SeenBySet is the set of participants that acknowledged a message.
// Stored as a jsonb column; membership is unique, insertion order is
// irrelevant.
type SeenBySet []Participant

func (s SeenBySet) Contains(p Participant) bool {
	for _, m := range s {
		if m.Equal(p) {
			return true
		}
	}
	return false
}

func (s SeenBySet) Value() (driver.Value, error) {
	if s == nil {
		s = SeenBySet{}
	}
	return json.Marshal(s)
}

func (s *SeenBySet) Scan(src interface{}) error {
	return scanJSON(src, s)
}

// Reaction is one participant's reaction to a message. A message holds
// at most one reaction per participant.
type Reaction struct {
	ParticipantID string `json:"participant_id"`
	Role          Role   `json:"role"`
	Kind          string `json:"kind"`
}

func (r Reaction) Participant() Participant {
	return Participant{ID: r.ParticipantID, Role: r.Role}
}

type ReactionList []Reaction

func (l ReactionList) IndexOf(p Participant) int {
	for i, r := range l {
		if r.Participant().Equal(p) {
			return i
		}
	}
	return -1
}

// Counts aggregates the list into per-kind totals. Counts are
// recomputed from the list on every write, so the two never drift apart
// within a single row version.
func (l ReactionList) Counts() ReactionCounts {
	counts := ReactionCounts{}
	for _, r := range l {
		counts[r.Kind]++
	}
	return counts
}

func (l ReactionList) Value() (driver.Value, error) {
	if l == nil {
		l = ReactionList{}
	}
	return json.Marshal(l)
}

func (l *ReactionList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type ReactionCounts map[string]int

func (c ReactionCounts) Value() (driver.Value, error) {
	if c == nil {
		c = ReactionCounts{}
	}
	return json.Marshal(c)
}

func (c *ReactionCounts) Scan(src interface{}) error {
	return scanJSON(src, c)
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported scan source %T", src)
	}
}
