package response

import (
	"time"

	"respresso/internal/domain/entities"
)

type SessionResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id,omitempty"`
	StaffID      string     `json:"staff_id,omitempty"`
	Status       string     `json:"status"`
	PostNumber   *int       `json:"post_number,omitempty"`
	LimitMinutes *int       `json:"limit_minutes,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Cost         *float64   `json:"cost,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

func FromSession(session entities.Session) SessionResponse {
	return SessionResponse{
		ID:           session.ID,
		UserID:       session.UserID,
		StaffID:      session.StaffID,
		Status:       string(session.Status),
		PostNumber:   session.PostNumber,
		LimitMinutes: session.LimitMinutes,
		Duration:     session.Duration,
		Cost:         session.Cost,
		StartTime:    session.StartTime,
		EndTime:      session.EndTime,
	}
}

func FromSessions(sessions []entities.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromSession(s))
	}
	return out
}
