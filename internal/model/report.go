package model

import "time"

// Report flags a message for the moderation workflow. Resolution is
// owned by a separate admin flow; this service only creates reports.
type Report struct {
	ID             int64      `db:"id" json:"id"`
	MessageID      int64      `db:"message_id" json:"message_id"`
	ReporterID     string     `db:"reporter_id" json:"reporter_id"`
	ReporterRole   Role       `db:"reporter_role" json:"reporter_role"`
	Reason         string     `db:"reason" json:"reason"`
	Resolved       bool       `db:"resolved" json:"resolved"`
	ResolvedByID   *string    `db:"resolved_by_id" json:"resolved_by_id,omitempty"`
	ResolvedByRole *Role      `db:"resolved_by_role" json:"resolved_by_role,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt     *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}

func (r *Report) Reporter() Participant {
	return Participant{ID: r.ReporterID, Role: r.ReporterRole}
}
