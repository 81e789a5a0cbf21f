package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"respresso/internal/domain/entities"
	mock_interfaces "respresso/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSessionUseCaseForTest(t *testing.T) (*SessionUseCase, *mock_interfaces.MockISessionRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	return NewSessionUseCase(repo), repo
}

func TestSessionUseCase_Start(t *testing.T) {
	uc, repo := newSessionUseCaseForTest(t)

	post := 3
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Session) (entities.Session, error) {
			if s.ID == "" || s.Status != entities.SessionStatusActive {
				t.Fatalf("unexpected session: %+v", s)
			}
			if s.PostNumber == nil || *s.PostNumber != 3 {
				t.Fatalf("expected post number 3, got %+v", s.PostNumber)
			}
			if s.StartTime.IsZero() {
				t.Fatalf("expected start time to be set")
			}
			return s, nil
		})

	if _, err := uc.Start(context.Background(), " c1 ", "staff-1", &post, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionUseCase_Complete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newSessionUseCaseForTest(t)
		if _, err := uc.Complete(context.Background(), "  ", nil, nil); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newSessionUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Session{}, nil)

		if _, err := uc.Complete(context.Background(), "s1", nil, nil); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("not active", func(t *testing.T) {
		uc, repo := newSessionUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Session{ID: "s1", Status: entities.SessionStatusCompleted}, nil)

		if _, err := uc.Complete(context.Background(), "s1", nil, nil); !errors.Is(err, ErrSessionNotActive) {
			t.Fatalf("expected ErrSessionNotActive, got %v", err)
		}
	})

	t.Run("derives duration when omitted", func(t *testing.T) {
		uc, repo := newSessionUseCaseForTest(t)

		start := time.Now().UTC().Add(-61 * time.Minute)
		active := entities.Session{ID: "s1", Status: entities.SessionStatusActive, StartTime: start}
		cost := 20.0

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(active, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.Status != entities.SessionStatusCompleted {
					t.Fatalf("expected COMPLETED, got %s", s.Status)
				}
				if s.EndTime == nil || s.Cost == nil || *s.Cost != 20 {
					t.Fatalf("unexpected close fields: %+v", s)
				}
				if s.Duration == nil || *s.Duration < 61 || *s.Duration > 62 {
					t.Fatalf("expected ~61 minutes rounded up, got %+v", s.Duration)
				}
				return s, nil
			})

		if _, err := uc.Complete(context.Background(), "s1", &cost, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit duration wins", func(t *testing.T) {
		uc, repo := newSessionUseCaseForTest(t)

		active := entities.Session{ID: "s1", Status: entities.SessionStatusActive, StartTime: time.Now().UTC()}
		duration := 45

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(active, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.Duration == nil || *s.Duration != 45 {
					t.Fatalf("expected duration 45, got %+v", s.Duration)
				}
				return s, nil
			})

		if _, err := uc.Complete(context.Background(), "s1", nil, &duration); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSessionUseCase_Cancel(t *testing.T) {
	uc, repo := newSessionUseCaseForTest(t)

	active := entities.Session{ID: "s1", Status: entities.SessionStatusActive, StartTime: time.Now().UTC()}
	repo.EXPECT().GetByID(gomock.Any(), "s1").Return(active, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Session) (entities.Session, error) {
			if s.Status != entities.SessionStatusCancelled {
				t.Fatalf("expected CANCELLED, got %s", s.Status)
			}
			if s.Cost != nil {
				t.Fatalf("cancelled session must carry no cost, got %+v", s.Cost)
			}
			if s.EndTime == nil {
				t.Fatalf("expected end time to be set")
			}
			return s, nil
		})

	if _, err := uc.Cancel(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
