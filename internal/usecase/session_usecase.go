package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotActive = errors.New("session not active")
)

// ISessionUseCase drives the console-rental lifecycle: ACTIVE at start,
// exactly one transition to COMPLETED or CANCELLED, never re-opened.

type ISessionUseCase interface {
	Start(ctx context.Context, userID, staffID string, postNumber, limitMinutes *int) (entities.Session, error)
	Complete(ctx context.Context, id string, cost *float64, duration *int) (entities.Session, error)
	Cancel(ctx context.Context, id string) (entities.Session, error)
	List(ctx context.Context) ([]entities.Session, error)
	ListActive(ctx context.Context) ([]entities.Session, error)
}

type SessionUseCase struct {
	repo interfaces.ISessionRepository
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository) *SessionUseCase {
	return &SessionUseCase{repo: repo}
}

func (u *SessionUseCase) Start(ctx context.Context, userID, staffID string, postNumber, limitMinutes *int) (entities.Session, error) {
	now := time.Now().UTC()
	s := entities.Session{
		ID:           uuid.NewString(),
		UserID:       strings.TrimSpace(userID),
		StaffID:      strings.TrimSpace(staffID),
		StartTime:    now,
		PostNumber:   postNumber,
		LimitMinutes: limitMinutes,
		Status:       entities.SessionStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, s)
}

// Complete closes an active session. When the caller does not supply a
// duration it is computed as the elapsed minutes since start, rounded up,
// the same way the till UI does.
func (u *SessionUseCase) Complete(ctx context.Context, id string, cost *float64, duration *int) (entities.Session, error) {
	s, err := u.loadActive(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}

	now := time.Now().UTC()
	if duration == nil {
		minutes := int(math.Ceil(now.Sub(s.StartTime).Minutes()))
		if minutes < 0 {
			minutes = 0
		}
		duration = &minutes
	}

	s.Status = entities.SessionStatusCompleted
	s.EndTime = &now
	s.Duration = duration
	s.Cost = cost
	s.UpdatedAt = now

	return u.repo.Save(ctx, s)
}

// Cancel closes an active session with no cost.
func (u *SessionUseCase) Cancel(ctx context.Context, id string) (entities.Session, error) {
	s, err := u.loadActive(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}

	now := time.Now().UTC()
	s.Status = entities.SessionStatusCancelled
	s.EndTime = &now
	s.UpdatedAt = now

	return u.repo.Save(ctx, s)
}

func (u *SessionUseCase) loadActive(ctx context.Context, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	if s.Status != entities.SessionStatusActive {
		return entities.Session{}, ErrSessionNotActive
	}
	return s, nil
}

func (u *SessionUseCase) List(ctx context.Context) ([]entities.Session, error) {
	return u.repo.List(ctx)
}

func (u *SessionUseCase) ListActive(ctx context.Context) ([]entities.Session, error) {
	return u.repo.ListActive(ctx)
}
