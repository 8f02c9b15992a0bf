package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sugarline/cakeshop/internal/domain/model"
)

// SessionRepository persists cake configuration sessions, including the studio
// scene attached to each session.
type SessionRepository interface {
	Create(ctx context.Context, session *model.ConfigSession) error
	Get(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error)
	Save(ctx context.Context, session *model.ConfigSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}
