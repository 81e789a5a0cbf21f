package interfaces

import (
	"context"
	"time"

	"respresso/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for Session.

type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	Save(ctx context.Context, s entities.Session) (entities.Session, error)
	List(ctx context.Context) ([]entities.Session, error)
	ListActive(ctx context.Context) ([]entities.Session, error)
	ListInRange(ctx context.Context, from, to time.Time, staffID string) ([]entities.Session, error)
}
