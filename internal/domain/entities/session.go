package entities

import "time"

// SessionStatus is the lifecycle of a console rental session.
//
// A session is created ACTIVE and transitions exactly once to either
// COMPLETED (duration and cost finalized) or CANCELLED (no cost). It is
// never re-opened.

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

// Session is a timed gaming-console rental.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_at-index): gsi1pk (constant) + created_at
//
// EndTime, Duration, Cost, LimitMinutes and PostNumber are optional;
// reporting defaults absent numerics to zero.
type Session struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id,omitempty"`
	StaffID      string        `json:"staff_id,omitempty"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      *time.Time    `json:"end_time,omitempty"`
	Duration     *int          `json:"duration,omitempty"`
	LimitMinutes *int          `json:"limit_minutes,omitempty"`
	PostNumber   *int          `json:"post_number,omitempty"`
	Cost         *float64      `json:"cost,omitempty"`
	Status       SessionStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
